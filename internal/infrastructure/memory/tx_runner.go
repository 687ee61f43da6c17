package memory

import (
	"context"

	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner emula una transacción sobre el store: si fn falla restaura empresas y productos
// al estado previo. No aísla de escritores concurrentes.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el store compartido.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

func (r *TxRunner) Run(_ context.Context, fn func(
	empresas repository.EmpresaRepository,
	productos repository.ProductoRepository,
) error) error {
	empresas, productos, nextID := r.snapshot()
	if err := fn(NewEmpresaRepository(r.s), NewProductoRepository(r.s)); err != nil {
		r.s.mu.Lock()
		r.s.empresas, r.s.productos, r.s.nextID = empresas, productos, nextID
		r.s.mu.Unlock()
		return err
	}
	return nil
}

func (r *TxRunner) snapshot() (map[string]entity.Empresa, map[int64]*entity.Producto, int64) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	empresas := make(map[string]entity.Empresa, len(r.s.empresas))
	for k, v := range r.s.empresas {
		empresas[k] = v
	}
	productos := make(map[int64]*entity.Producto, len(r.s.productos))
	for k, v := range r.s.productos {
		productos[k] = v.Clone()
	}
	return empresas, productos, r.s.nextID
}
