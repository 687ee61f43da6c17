package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL.
// Los precios se guardan como JSONB {"COP": "15000", "USD": "3.75"}.
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, codigo, nombre, caracteristicas, empresa_nit, precios`

// Save con ID sobrescribe ese registro; sin ID crea o sobrescribe por código.
// Devuelve repository.ErrDuplicado si el código ya lo usa otro producto y
// repository.ErrEmpresaInexistente si la empresa no existe.
func (r *ProductoRepo) Save(ctx context.Context, producto *entity.Producto) (*entity.Producto, error) {
	precios, err := json.Marshal(producto.Precios)
	if err != nil {
		return nil, fmt.Errorf("marshal precios: %w", err)
	}

	var row interface{ Scan(dest ...any) error }
	if producto.ID != 0 {
		row = r.q.QueryRow(ctx, `
			INSERT INTO productos (id, codigo, nombre, caracteristicas, empresa_nit, precios)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE
			SET codigo = EXCLUDED.codigo, nombre = EXCLUDED.nombre, caracteristicas = EXCLUDED.caracteristicas,
			    empresa_nit = EXCLUDED.empresa_nit, precios = EXCLUDED.precios, updated_at = now()
			RETURNING `+productoColumns,
			producto.ID, producto.Codigo, producto.Nombre, producto.Caracteristicas, producto.EmpresaNIT, precios,
		)
	} else {
		row = r.q.QueryRow(ctx, `
			INSERT INTO productos (codigo, nombre, caracteristicas, empresa_nit, precios)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (codigo) DO UPDATE
			SET nombre = EXCLUDED.nombre, caracteristicas = EXCLUDED.caracteristicas,
			    empresa_nit = EXCLUDED.empresa_nit, precios = EXCLUDED.precios, updated_at = now()
			RETURNING `+productoColumns,
			producto.Codigo, producto.Nombre, producto.Caracteristicas, producto.EmpresaNIT, precios,
		)
	}

	saved, err := scanProducto(row)
	if err != nil {
		return nil, classify("save producto", err)
	}
	return saved, nil
}

// GetByCodigo nil, nil si no existe.
func (r *ProductoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE codigo = $1`, codigo)
}

// GetByID nil, nil si no existe.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.getOne(ctx, `SELECT `+productoColumns+` FROM productos WHERE id = $1`, id)
}

func (r *ProductoRepo) ListAll(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos ORDER BY id`)
}

func (r *ProductoRepo) ListByEmpresa(ctx context.Context, nit string) ([]*entity.Producto, error) {
	return r.list(ctx, `SELECT `+productoColumns+` FROM productos WHERE empresa_nit = $1 ORDER BY id`, nit)
}

func (r *ProductoRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM productos WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) getOne(ctx context.Context, query string, arg any) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

func (r *ProductoRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Producto, 0)
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanProducto(row interface{ Scan(dest ...any) error }) (*entity.Producto, error) {
	var (
		p       entity.Producto
		precios []byte
	)
	if err := row.Scan(&p.ID, &p.Codigo, &p.Nombre, &p.Caracteristicas, &p.EmpresaNIT, &precios); err != nil {
		return nil, err
	}
	p.Precios = make(map[string]decimal.Decimal)
	if err := json.Unmarshal(precios, &p.Precios); err != nil {
		return nil, fmt.Errorf("unmarshal precios: %w", err)
	}
	return &p, nil
}

// classify traduce las violaciones de constraints a los errores del puerto.
func classify(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, repository.ErrDuplicado)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w", op, repository.ErrEmpresaInexistente)
	}
	return fmt.Errorf("%s: %w", op, err)
}
