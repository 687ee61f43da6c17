package dto

// EnviarReporteRequest destino del reporte de inventario y filtro opcional por empresa.
type EnviarReporteRequest struct {
	Email   string `json:"email" example:"gerencia@empresa.com"`
	Empresa string `json:"empresa,omitempty" example:"900123456-1"`
}

// EnviarReporteResponse confirmación del envío.
type EnviarReporteResponse struct {
	Message string `json:"message"`
	Destino string `json:"destino"`
	Archivo string `json:"archivo"`
	Items   int    `json:"items"`
	EnvioID string `json:"envio_id"`
}
