package inventory

import (
	"context"

	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda nada escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		empresas repository.EmpresaRepository,
		productos repository.ProductoRepository,
	) error) error
}
