package entity

// ValueError falla de construcción de una entidad: un campo viola un invariante.
// La capa de casos de uso la traduce a domain.ErrEntityValidation.
type ValueError struct {
	Field string
	Msg   string
}

func (e *ValueError) Error() string { return e.Msg }

func invalid(field, msg string) *ValueError {
	return &ValueError{Field: field, Msg: msg}
}
