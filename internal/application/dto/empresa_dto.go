package dto

// EmpresaRequest entrada para crear una empresa.
type EmpresaRequest struct {
	NIT       string `json:"nit" example:"900123456-1"`
	Nombre    string `json:"nombre" example:"Acme S.A.S"`
	Direccion string `json:"direccion" example:"Calle 1 # 2-3"`
	Telefono  string `json:"telefono" example:"3001234567"`
}

// ActualizarEmpresaRequest campos opcionales; los ausentes conservan su valor.
type ActualizarEmpresaRequest struct {
	Nombre    *string `json:"nombre,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
	Telefono  *string `json:"telefono,omitempty"`
}

// EmpresaResponse salida de una empresa.
type EmpresaResponse struct {
	NIT       string `json:"nit"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}
