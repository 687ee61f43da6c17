package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/domain"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

type usuarioDemo struct {
	email    string
	password string
	admin    bool
}

var usuarios = []usuarioDemo{
	{email: "nicklcsdev@gmail.com", password: "nicklcsdev", admin: true},
	{email: "visitante@test.com", password: "123456"},
}

// seeder carga los datos de demostración a través de los casos de uso.
type seeder struct {
	empresas repository.EmpresaRepository
	users    repository.UserRepository
	importar *inventory.ImportarCatalogoUseCase
	auth     *auth.AuthUseCase
	log      *logger.Logger
}

type resumen struct {
	Empresas  int
	Productos int
	Usuarios  int
}

// run con reset borra empresas (y sus productos por cascada) y los usuarios demo antes de cargar.
// Sin reset la carga es idempotente: el catálogo se sobrescribe y los usuarios existentes se conservan.
func (s *seeder) run(ctx context.Context, reset bool) (*resumen, error) {
	if reset {
		if err := s.limpiar(ctx); err != nil {
			return nil, err
		}
	}

	out := &resumen{}
	for _, u := range usuarios {
		_, err := s.auth.RegisterUser(ctx, u.email, u.password, u.admin)
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			s.log.Info().Str("email", u.email).Msg("usuario ya existe, se conserva")
		case err != nil:
			return nil, fmt.Errorf("usuario %s: %w", u.email, err)
		default:
			out.Usuarios++
			s.log.Info().Str("email", u.email).Bool("admin", u.admin).Msg("usuario creado")
		}
	}

	for _, e := range dataset {
		res, err := s.importar.Execute(ctx, e.catalogo())
		if err != nil {
			return nil, fmt.Errorf("empresa %s: %w", e.nit, err)
		}
		out.Empresas++
		out.Productos += len(res.Productos)
		s.log.Info().Str("nit", e.nit).Int("productos", len(res.Productos)).Msg("empresa cargada")
	}
	return out, nil
}

func (s *seeder) limpiar(ctx context.Context) error {
	s.log.Warn().Msg("limpiando datos antiguos")
	list, err := s.empresas.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listar empresas: %w", err)
	}
	for _, e := range list {
		if err := s.empresas.Delete(ctx, e.NIT); err != nil {
			return fmt.Errorf("eliminar empresa %s: %w", e.NIT, err)
		}
	}
	for _, u := range usuarios {
		if err := s.users.DeleteByEmail(ctx, u.email); err != nil {
			return fmt.Errorf("eliminar usuario %s: %w", u.email, err)
		}
	}
	return nil
}
