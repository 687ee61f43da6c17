package usecase

import (
	"errors"

	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

// validationError re-etiqueta la falla de construcción de una entidad como error de dominio.
func validationError(err error) error {
	return domain.NewValidationError("datos inválidos", err)
}

// WrapError es la frontera de traducción de los casos de uso: los errores de dominio pasan sin cambios,
// los errores conocidos del adaptador se clasifican y todo lo demás se envuelve como InfrastructureError
// con msg como contexto y la causa original preservada.
func WrapError(msg string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainError(err) {
		return err
	}
	var ve *entity.ValueError
	switch {
	case errors.As(err, &ve):
		return validationError(err)
	case errors.Is(err, repository.ErrDuplicado):
		return domain.NewBusinessRuleError("ya existe un registro con esa identidad")
	case errors.Is(err, repository.ErrEmpresaInexistente):
		return domain.NewNotFoundError("la empresa asociada no existe")
	}
	return domain.NewInfrastructureError(msg, err)
}
