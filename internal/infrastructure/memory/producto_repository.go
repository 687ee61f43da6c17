package memory

import (
	"context"
	"sort"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación en memoria de repository.ProductoRepository.
// Asigna IDs incrementales y hace cumplir la unicidad del código y la referencia a la empresa
// como lo harían el índice único y la FK en SQL.
type ProductoRepo struct {
	s *Store
}

// NewProductoRepository construye el repositorio sobre el store compartido.
func NewProductoRepository(s *Store) *ProductoRepo {
	return &ProductoRepo{s: s}
}

// Save con ID sobrescribe ese registro; sin ID crea o sobrescribe por código.
// Devuelve repository.ErrEmpresaInexistente si la empresa no está en el store.
func (r *ProductoRepo) Save(_ context.Context, producto *entity.Producto) (*entity.Producto, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.empresas[producto.EmpresaNIT]; !ok {
		return nil, repository.ErrEmpresaInexistente
	}

	p := producto.Clone()
	if p.ID == 0 {
		if existing := r.s.productoByCodigo(p.Codigo); existing != nil {
			p.ID = existing.ID
		} else {
			r.s.nextID++
			p.ID = r.s.nextID
		}
	} else if other := r.s.productoByCodigo(p.Codigo); other != nil && other.ID != p.ID {
		return nil, repository.ErrDuplicado
	}
	r.s.productos[p.ID] = p
	return p.Clone(), nil
}

// GetByCodigo devuelve nil, nil si no existe.
func (r *ProductoRepo) GetByCodigo(_ context.Context, codigo string) (*entity.Producto, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p := r.s.productoByCodigo(codigo); p != nil {
		return p.Clone(), nil
	}
	return nil, nil
}

// GetByID devuelve nil, nil si no existe.
func (r *ProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.productos[id]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

// ListAll devuelve todos los productos ordenados por ID.
func (r *ProductoRepo) ListAll(_ context.Context) ([]*entity.Producto, error) {
	return r.filter(func(*entity.Producto) bool { return true }), nil
}

// ListByEmpresa devuelve los productos de la empresa ordenados por ID.
func (r *ProductoRepo) ListByEmpresa(_ context.Context, nit string) ([]*entity.Producto, error) {
	return r.filter(func(p *entity.Producto) bool { return p.EmpresaNIT == nit }), nil
}

// Delete elimina por ID; no-op si no existe.
func (r *ProductoRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.productos, id)
	return nil
}

// Count número de productos almacenados.
func (r *ProductoRepo) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.productos)
}

func (r *ProductoRepo) filter(keep func(*entity.Producto) bool) []*entity.Producto {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Producto, 0, len(r.s.productos))
	for _, p := range r.s.productos {
		if keep(p) {
			list = append(list, p.Clone())
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
