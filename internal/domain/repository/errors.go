package repository

import "errors"

// Errores que un adaptador de almacenamiento puede devolver para que los casos de uso los clasifiquen.
// Cualquier otro error se trata como falla de infraestructura.
var (
	// ErrDuplicado restricción de unicidad violada (ej. código de producto).
	ErrDuplicado = errors.New("restricción de unicidad violada")
	// ErrEmpresaInexistente el producto referencia una empresa que no existe.
	ErrEmpresaInexistente = errors.New("la empresa referenciada no existe")
)
