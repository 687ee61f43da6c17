package repository

import (
	"context"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	// Save con ID != 0 sobrescribe ese registro; con ID == 0 crea o sobrescribe por código.
	// Devuelve el producto almacenado con su ID asignado.
	Save(ctx context.Context, producto *entity.Producto) (*entity.Producto, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Producto, error)
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	ListAll(ctx context.Context) ([]*entity.Producto, error)
	ListByEmpresa(ctx context.Context, nit string) ([]*entity.Producto, error)
	// Delete es no-op si el ID no existe.
	Delete(ctx context.Context, id int64) error
}
