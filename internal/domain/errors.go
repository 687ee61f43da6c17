package domain

import "errors"

// Tipos de error de dominio. Toda falla que cruza la capa de casos de uso pertenece a uno de ellos
// y se clasifica con errors.Is(err, domain.ErrXxx).
var (
	ErrEntityValidation = errors.New("datos inválidos")
	ErrBusinessRule     = errors.New("regla de negocio violada")
	ErrResourceNotFound = errors.New("recurso no encontrado")
	ErrInfrastructure   = errors.New("error de infraestructura")
)

// Errores de autenticación (sin dependencias externas).
var (
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// Error es el error de dominio clasificado. Kind es uno de los sentinels ErrEntityValidation,
// ErrBusinessRule, ErrResourceNotFound o ErrInfrastructure; Err conserva la causa original.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg == "":
		return e.Kind.Error()
	default:
		return e.Msg
	}
}

// Unwrap expone el tipo y la causa para errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewValidationError datos mal formados (NIT, teléfono, precios, campos obligatorios).
func NewValidationError(msg string, cause error) *Error {
	return &Error{Kind: ErrEntityValidation, Msg: msg, Err: cause}
}

// NewBusinessRuleError operación bien formada que rompe una regla (ej. identidad duplicada).
func NewBusinessRuleError(msg string) *Error {
	return &Error{Kind: ErrBusinessRule, Msg: msg}
}

// NewNotFoundError la identidad solicitada no existe.
func NewNotFoundError(msg string) *Error {
	return &Error{Kind: ErrResourceNotFound, Msg: msg}
}

// NewInfrastructureError falla por debajo del dominio (almacenamiento, servicios externos).
func NewInfrastructureError(msg string, cause error) *Error {
	return &Error{Kind: ErrInfrastructure, Msg: msg, Err: cause}
}

// KindOf devuelve el tipo de error de dominio de err, o nil si err no está clasificado.
func KindOf(err error) error {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return nil
}

// IsDomainError informa si err ya pertenece a la taxonomía de dominio.
func IsDomainError(err error) bool {
	return KindOf(err) != nil
}
