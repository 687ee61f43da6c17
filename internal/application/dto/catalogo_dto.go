package dto

import "github.com/shopspring/decimal"

// CatalogoProductoRequest ítem de un catálogo importado (la empresa la fija el catálogo).
type CatalogoProductoRequest struct {
	Codigo          string                     `json:"codigo"`
	Nombre          string                     `json:"nombre"`
	Caracteristicas string                     `json:"caracteristicas"`
	Precios         map[string]decimal.Decimal `json:"precios" swaggertype:"object"`
}

// CatalogoRequest empresa con todos sus productos, cargados de forma atómica.
type CatalogoRequest struct {
	Empresa   EmpresaRequest            `json:"empresa"`
	Productos []CatalogoProductoRequest `json:"productos"`
}

// CatalogoResponse resultado de la importación.
type CatalogoResponse struct {
	Empresa   EmpresaResponse    `json:"empresa"`
	Productos []ProductoResponse `json:"productos"`
}
