package dto

import "github.com/shopspring/decimal"

// ProductoRequest entrada para crear un producto. Precios: {"COP": 15000, "USD": "3.75"}.
type ProductoRequest struct {
	Codigo          string                     `json:"codigo" example:"TEC-001"`
	Nombre          string                     `json:"nombre" example:"Mouse inalámbrico"`
	Caracteristicas string                     `json:"caracteristicas"`
	EmpresaNIT      string                     `json:"empresa" example:"900123456-1"`
	Precios         map[string]decimal.Decimal `json:"precios" swaggertype:"object"`
}

// ActualizarProductoRequest campos opcionales; precios presente reemplaza el mapa completo.
type ActualizarProductoRequest struct {
	Codigo          *string                    `json:"codigo,omitempty"`
	Nombre          *string                    `json:"nombre,omitempty"`
	Caracteristicas *string                    `json:"caracteristicas,omitempty"`
	EmpresaNIT      *string                    `json:"empresa,omitempty"`
	Precios         map[string]decimal.Decimal `json:"precios,omitempty" swaggertype:"object"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID              int64                      `json:"id"`
	Codigo          string                     `json:"codigo"`
	Nombre          string                     `json:"nombre"`
	Caracteristicas string                     `json:"caracteristicas"`
	EmpresaNIT      string                     `json:"empresa"`
	Precios         map[string]decimal.Decimal `json:"precios" swaggertype:"object"`
}
