package repository

import (
	"context"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

// EmpresaRepository define el puerto de persistencia para Empresa (DIP).
// La implementación vive en infrastructure y no contiene reglas de negocio.
type EmpresaRepository interface {
	// Save crea o sobrescribe por NIT y devuelve la empresa almacenada.
	Save(ctx context.Context, empresa *entity.Empresa) (*entity.Empresa, error)
	// GetByNIT devuelve nil, nil si no existe.
	GetByNIT(ctx context.Context, nit string) (*entity.Empresa, error)
	// ListAll devuelve una lista vacía (no error) si no hay empresas.
	ListAll(ctx context.Context) ([]*entity.Empresa, error)
	// Delete es no-op si el NIT no existe. Los productos de la empresa se eliminan en cascada.
	Delete(ctx context.Context, nit string) error
}
