package usecase

import (
	"context"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ProductoUseCases agrupa los casos de uso de productos construidos sobre el mismo repositorio.
type ProductoUseCases struct {
	Crear            *CrearProductoUseCase
	Listar           *ListarProductosUseCase
	ListarPorEmpresa *ListarProductosPorEmpresaUseCase
	Obtener          *ObtenerProductoUseCase
	Actualizar       *ActualizarProductoUseCase
	Eliminar         *EliminarProductoUseCase
}

// NewProductoUseCases construye todos los casos de uso de productos.
func NewProductoUseCases(repo repository.ProductoRepository) *ProductoUseCases {
	return &ProductoUseCases{
		Crear:            NewCrearProductoUseCase(repo),
		Listar:           NewListarProductosUseCase(repo),
		ListarPorEmpresa: NewListarProductosPorEmpresaUseCase(repo),
		Obtener:          NewObtenerProductoUseCase(repo),
		Actualizar:       NewActualizarProductoUseCase(repo),
		Eliminar:         NewEliminarProductoUseCase(repo),
	}
}

// CrearProductoUseCase registra un producto nuevo. Falla con BusinessRuleError si el código ya existe.
type CrearProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewCrearProductoUseCase construye el caso de uso.
func NewCrearProductoUseCase(repo repository.ProductoRepository) *CrearProductoUseCase {
	return &CrearProductoUseCase{repo: repo}
}

// Execute valida, comprueba unicidad del código y persiste. Devuelve el producto con su ID asignado.
func (uc *CrearProductoUseCase) Execute(
	ctx context.Context,
	codigo, nombre, caracteristicas, empresaNIT string,
	precios map[string]decimal.Decimal,
) (*entity.Producto, error) {
	producto, err := entity.NewProducto(codigo, nombre, caracteristicas, empresaNIT, precios)
	if err != nil {
		return nil, validationError(err)
	}

	existing, err := uc.repo.GetByCodigo(ctx, producto.Codigo)
	if err != nil {
		return nil, WrapError("error guardando producto", err)
	}
	if existing != nil {
		return nil, codigoDuplicado(producto.Codigo)
	}

	saved, err := uc.repo.Save(ctx, producto)
	if err != nil {
		return nil, WrapError("error guardando producto", err)
	}
	return saved, nil
}

// ListarProductosUseCase lista todos los productos.
type ListarProductosUseCase struct {
	repo repository.ProductoRepository
}

// NewListarProductosUseCase construye el caso de uso.
func NewListarProductosUseCase(repo repository.ProductoRepository) *ListarProductosUseCase {
	return &ListarProductosUseCase{repo: repo}
}

func (uc *ListarProductosUseCase) Execute(ctx context.Context) ([]*entity.Producto, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, WrapError("error consultando productos", err)
	}
	return nonNil(list), nil
}

// ListarProductosPorEmpresaUseCase lista los productos de una empresa. Una empresa sin productos
// (o inexistente) devuelve una lista vacía.
type ListarProductosPorEmpresaUseCase struct {
	repo repository.ProductoRepository
}

// NewListarProductosPorEmpresaUseCase construye el caso de uso.
func NewListarProductosPorEmpresaUseCase(repo repository.ProductoRepository) *ListarProductosPorEmpresaUseCase {
	return &ListarProductosPorEmpresaUseCase{repo: repo}
}

func (uc *ListarProductosPorEmpresaUseCase) Execute(ctx context.Context, nit string) ([]*entity.Producto, error) {
	list, err := uc.repo.ListByEmpresa(ctx, nit)
	if err != nil {
		return nil, WrapError("error consultando productos", err)
	}
	return nonNil(list), nil
}

// ObtenerProductoUseCase obtiene un producto por ID.
type ObtenerProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewObtenerProductoUseCase construye el caso de uso.
func NewObtenerProductoUseCase(repo repository.ProductoRepository) *ObtenerProductoUseCase {
	return &ObtenerProductoUseCase{repo: repo}
}

func (uc *ObtenerProductoUseCase) Execute(ctx context.Context, id int64) (*entity.Producto, error) {
	producto, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError("error consultando producto", err)
	}
	if producto == nil {
		return nil, productoNoEncontrado(id)
	}
	return producto, nil
}

// ActualizarProductoInput campos a reemplazar; nil conserva el valor actual.
// Precios no nil reemplaza el mapa completo.
type ActualizarProductoInput struct {
	Codigo          *string
	Nombre          *string
	Caracteristicas *string
	EmpresaNIT      *string
	Precios         map[string]decimal.Decimal
}

// ActualizarProductoUseCase reemplaza un producto existente por ID.
type ActualizarProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewActualizarProductoUseCase construye el caso de uso.
func NewActualizarProductoUseCase(repo repository.ProductoRepository) *ActualizarProductoUseCase {
	return &ActualizarProductoUseCase{repo: repo}
}

// Execute carga el producto, superpone los campos recibidos, re-valida la entidad completa y la sobrescribe.
// Si cambia el código y otro producto ya lo usa falla con BusinessRuleError.
func (uc *ActualizarProductoUseCase) Execute(ctx context.Context, id int64, in ActualizarProductoInput) (*entity.Producto, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, WrapError("error actualizando producto", err)
	}
	if current == nil {
		return nil, productoNoEncontrado(id)
	}

	precios := current.Precios
	if in.Precios != nil {
		precios = in.Precios
	}
	producto, err := entity.NewProducto(
		orDefault(in.Codigo, current.Codigo),
		orDefault(in.Nombre, current.Nombre),
		orDefault(in.Caracteristicas, current.Caracteristicas),
		orDefault(in.EmpresaNIT, current.EmpresaNIT),
		precios,
	)
	if err != nil {
		return nil, validationError(err)
	}
	producto.ID = current.ID

	if producto.Codigo != current.Codigo {
		other, err := uc.repo.GetByCodigo(ctx, producto.Codigo)
		if err != nil {
			return nil, WrapError("error actualizando producto", err)
		}
		if other != nil && other.ID != current.ID {
			return nil, codigoDuplicado(producto.Codigo)
		}
	}

	saved, err := uc.repo.Save(ctx, producto)
	if err != nil {
		return nil, WrapError("error actualizando producto", err)
	}
	return saved, nil
}

// EliminarProductoUseCase elimina un producto existente. Falla con ResourceNotFoundError si no existe,
// sin intentar el borrado.
type EliminarProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewEliminarProductoUseCase construye el caso de uso.
func NewEliminarProductoUseCase(repo repository.ProductoRepository) *EliminarProductoUseCase {
	return &EliminarProductoUseCase{repo: repo}
}

func (uc *EliminarProductoUseCase) Execute(ctx context.Context, id int64) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return WrapError("error eliminando producto", err)
	}
	if current == nil {
		return productoNoEncontrado(id)
	}
	if err := uc.repo.Delete(ctx, current.ID); err != nil {
		return WrapError("error eliminando producto", err)
	}
	return nil
}

func productoNoEncontrado(id int64) error {
	return domain.NewNotFoundError(fmt.Sprintf("no existe un producto con el ID %d", id))
}

func codigoDuplicado(codigo string) error {
	return domain.NewBusinessRuleError(fmt.Sprintf("ya existe un producto con el código %s", codigo))
}

func nonNil(list []*entity.Producto) []*entity.Producto {
	if list == nil {
		return []*entity.Producto{}
	}
	return list
}
