package inventory

import (
	"context"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// EmpresaInput datos de la empresa dueña del catálogo.
type EmpresaInput struct {
	NIT       string
	Nombre    string
	Direccion string
	Telefono  string
}

// ProductoInput un ítem del catálogo. La empresa la fija el catálogo.
type ProductoInput struct {
	Codigo          string
	Nombre          string
	Caracteristicas string
	Precios         map[string]decimal.Decimal
}

// CatalogoInput empresa con todos sus productos.
type CatalogoInput struct {
	Empresa   EmpresaInput
	Productos []ProductoInput
}

// ImportResult resumen de la importación.
type ImportResult struct {
	Empresa   *entity.Empresa
	Productos []*entity.Producto
}

// ImportarCatalogoUseCase crea o reemplaza una empresa y sus productos de forma atómica.
// A diferencia de CrearEmpresa/CrearProducto no rechaza identidades existentes: las sobrescribe (upsert),
// lo que hace la carga repetible. Un código repetido en el mismo catálogo es BusinessRuleError.
type ImportarCatalogoUseCase struct {
	tx TxRunner
}

// NewImportarCatalogoUseCase construye el caso de uso.
func NewImportarCatalogoUseCase(tx TxRunner) *ImportarCatalogoUseCase {
	return &ImportarCatalogoUseCase{tx: tx}
}

// Execute valida todo el catálogo antes de abrir la transacción y luego persiste empresa y productos.
// Si un código ya pertenece a otra empresa el upsert lo reasigna a esta.
func (uc *ImportarCatalogoUseCase) Execute(ctx context.Context, in CatalogoInput) (*ImportResult, error) {
	empresa, err := entity.NewEmpresa(in.Empresa.NIT, in.Empresa.Nombre, in.Empresa.Direccion, in.Empresa.Telefono)
	if err != nil {
		return nil, usecase.WrapError("datos inválidos", err)
	}

	productos := make([]*entity.Producto, 0, len(in.Productos))
	vistos := make(map[string]struct{}, len(in.Productos))
	for i, p := range in.Productos {
		producto, err := entity.NewProducto(p.Codigo, p.Nombre, p.Caracteristicas, empresa.NIT, p.Precios)
		if err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("producto #%d inválido", i+1), err)
		}
		if _, dup := vistos[producto.Codigo]; dup {
			return nil, domain.NewBusinessRuleError(fmt.Sprintf("el código %s aparece repetido en el catálogo", producto.Codigo))
		}
		vistos[producto.Codigo] = struct{}{}
		productos = append(productos, producto)
	}

	result := &ImportResult{}
	err = uc.tx.Run(ctx, func(empresas repository.EmpresaRepository, prods repository.ProductoRepository) error {
		saved, err := empresas.Save(ctx, empresa)
		if err != nil {
			return err
		}
		result.Empresa = saved
		for _, p := range productos {
			savedP, err := prods.Save(ctx, p)
			if err != nil {
				return fmt.Errorf("producto %s: %w", p.Codigo, err)
			}
			result.Productos = append(result.Productos, savedP)
		}
		return nil
	})
	if err != nil {
		return nil, usecase.WrapError("error importando catálogo", err)
	}
	return result, nil
}
