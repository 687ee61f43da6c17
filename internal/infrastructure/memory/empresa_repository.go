package memory

import (
	"context"
	"sort"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación en memoria de repository.EmpresaRepository.
type EmpresaRepo struct {
	s *Store
}

// NewEmpresaRepository construye el repositorio sobre el store compartido.
func NewEmpresaRepository(s *Store) *EmpresaRepo {
	return &EmpresaRepo{s: s}
}

// Save crea o sobrescribe por NIT.
func (r *EmpresaRepo) Save(_ context.Context, empresa *entity.Empresa) (*entity.Empresa, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.empresas[empresa.NIT] = *empresa
	out := *empresa
	return &out, nil
}

// GetByNIT devuelve nil, nil si no existe.
func (r *EmpresaRepo) GetByNIT(_ context.Context, nit string) (*entity.Empresa, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.empresas[nit]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// ListAll devuelve las empresas ordenadas por nombre y NIT.
func (r *EmpresaRepo) ListAll(_ context.Context) ([]*entity.Empresa, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.Empresa, 0, len(r.s.empresas))
	for _, e := range r.s.empresas {
		e := e
		list = append(list, &e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].Nombre != list[j].Nombre {
			return list[i].Nombre < list[j].Nombre
		}
		return list[i].NIT < list[j].NIT
	})
	return list, nil
}

// Delete elimina la empresa y, en cascada, sus productos.
func (r *EmpresaRepo) Delete(_ context.Context, nit string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.empresas, nit)
	for id, p := range r.s.productos {
		if p.EmpresaNIT == nit {
			delete(r.s.productos, id)
		}
	}
	return nil
}

// Count número de empresas almacenadas.
func (r *EmpresaRepo) Count() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.empresas)
}
