package usecase_test

import (
	"context"
	"errors"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

var errConexion = errors.New("dial tcp 10.0.0.5:5432: connection refused")

// failingEmpresaRepo simula un almacenamiento caído.
type failingEmpresaRepo struct{ err error }

func (r failingEmpresaRepo) Save(context.Context, *entity.Empresa) (*entity.Empresa, error) {
	return nil, r.err
}
func (r failingEmpresaRepo) GetByNIT(context.Context, string) (*entity.Empresa, error) {
	return nil, r.err
}
func (r failingEmpresaRepo) ListAll(context.Context) ([]*entity.Empresa, error) { return nil, r.err }
func (r failingEmpresaRepo) Delete(context.Context, string) error               { return r.err }

type failingProductoRepo struct{ err error }

func (r failingProductoRepo) Save(context.Context, *entity.Producto) (*entity.Producto, error) {
	return nil, r.err
}
func (r failingProductoRepo) GetByCodigo(context.Context, string) (*entity.Producto, error) {
	return nil, r.err
}
func (r failingProductoRepo) GetByID(context.Context, int64) (*entity.Producto, error) {
	return nil, r.err
}
func (r failingProductoRepo) ListAll(context.Context) ([]*entity.Producto, error) {
	return nil, r.err
}
func (r failingProductoRepo) ListByEmpresa(context.Context, string) ([]*entity.Producto, error) {
	return nil, r.err
}
func (r failingProductoRepo) Delete(context.Context, int64) error { return r.err }

// spyProductoRepo cuenta las llamadas a Delete sobre un repositorio vacío.
type spyProductoRepo struct {
	failingProductoRepo
	deletes int
}

func (r *spyProductoRepo) GetByID(context.Context, int64) (*entity.Producto, error) { return nil, nil }
func (r *spyProductoRepo) Delete(context.Context, int64) error {
	r.deletes++
	return nil
}
