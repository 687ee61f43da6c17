package postgres

import (
	"context"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
)

// Asegura que EmpresaRepo implementa repository.EmpresaRepository.
var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador. Acepta pool o tx (Querier).
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Save crea la empresa o sobrescribe la existente con el mismo NIT.
func (r *EmpresaRepo) Save(ctx context.Context, empresa *entity.Empresa) (*entity.Empresa, error) {
	query := `
		INSERT INTO empresas (nit, nombre, direccion, telefono)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (nit) DO UPDATE
		SET nombre = EXCLUDED.nombre, direccion = EXCLUDED.direccion, telefono = EXCLUDED.telefono, updated_at = now()
		RETURNING nit, nombre, direccion, telefono`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, empresa.NIT, empresa.Nombre, empresa.Direccion, empresa.Telefono).
		Scan(&e.NIT, &e.Nombre, &e.Direccion, &e.Telefono)
	if err != nil {
		return nil, fmt.Errorf("save empresa: %w", err)
	}
	return &e, nil
}

// GetByNIT obtiene una empresa por NIT. nil, nil si no existe.
func (r *EmpresaRepo) GetByNIT(ctx context.Context, nit string) (*entity.Empresa, error) {
	query := `SELECT nit, nombre, direccion, telefono FROM empresas WHERE nit = $1`
	var e entity.Empresa
	err := r.q.QueryRow(ctx, query, nit).Scan(&e.NIT, &e.Nombre, &e.Direccion, &e.Telefono)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// ListAll devuelve todas las empresas ordenadas por nombre.
func (r *EmpresaRepo) ListAll(ctx context.Context) ([]*entity.Empresa, error) {
	query := `SELECT nit, nombre, direccion, telefono FROM empresas ORDER BY nombre, nit`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Empresa, 0)
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.NIT, &e.Nombre, &e.Direccion, &e.Telefono); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Delete elimina la empresa; la FK ON DELETE CASCADE elimina sus productos.
func (r *EmpresaRepo) Delete(ctx context.Context, nit string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM empresas WHERE nit = $1`, nit); err != nil {
		return fmt.Errorf("delete empresa: %w", err)
	}
	return nil
}
