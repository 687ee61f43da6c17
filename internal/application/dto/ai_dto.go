package dto

import "github.com/shopspring/decimal"

// DescripcionRequest entrada para generar la descripción comercial de un producto.
type DescripcionRequest struct {
	Nombre          string `json:"nombre" example:"Mouse inalámbrico"`
	Caracteristicas string `json:"caracteristicas" example:"2.4GHz, 1600 DPI, batería AA"`
}

// DescripcionResponse texto generado por el modelo.
type DescripcionResponse struct {
	Descripcion string `json:"descripcion"`
}

// ProductoBorrador producto extraído de un dictado; no se persiste hasta que el usuario lo confirme.
type ProductoBorrador struct {
	Codigo          string                     `json:"codigo"`
	Nombre          string                     `json:"nombre"`
	Caracteristicas string                     `json:"caracteristicas"`
	Precios         map[string]decimal.Decimal `json:"precios" swaggertype:"object"`
}

// VozResponse transcripción y borrador estructurado.
type VozResponse struct {
	Transcripcion string           `json:"transcripcion"`
	Producto      ProductoBorrador `json:"producto"`
}
