package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/memory"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

func newSeeder(store *memory.Store) (*seeder, *auth.AuthUseCase) {
	users := memory.NewUserRepository(store)
	authUC := auth.NewAuthUseCase(users, auth.JWTConfig{Secret: "seed-test", ExpMinutes: 5, Issuer: "seed"})
	return &seeder{
		empresas: memory.NewEmpresaRepository(store),
		users:    users,
		importar: inventory.NewImportarCatalogoUseCase(memory.NewTxRunner(store)),
		auth:     authUC,
		log:      logger.Nop(),
	}, authUC
}

func TestSeed_CargaCompleta(t *testing.T) {
	store := memory.NewStore()
	s, authUC := newSeeder(store)

	res, err := s.run(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Empresas)
	assert.Equal(t, 30, res.Productos)
	assert.Equal(t, 2, res.Usuarios)

	login, err := authUC.Login(context.Background(), dto.LoginRequest{Email: "nicklcsdev@gmail.com", Password: "nicklcsdev"})
	require.NoError(t, err)
	assert.True(t, login.IsAdmin)

	p, err := memory.NewProductoRepository(store).GetByCodigo(context.Background(), "TEC-62-4-001")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "iPhone 15 Pro Max", p.Nombre)
	assert.Equal(t, "1349.4", p.Precios["USD"].String())
	assert.Equal(t, "1272.73", p.Precios["EUR"].String())
}

func TestSeed_Idempotente(t *testing.T) {
	store := memory.NewStore()
	s, _ := newSeeder(store)
	ctx := context.Background()

	_, err := s.run(ctx, false)
	require.NoError(t, err)
	res, err := s.run(ctx, false)
	require.NoError(t, err)

	assert.Zero(t, res.Usuarios, "los usuarios existentes se conservan")
	assert.Equal(t, 30, memory.NewProductoRepository(store).Count())
	assert.Equal(t, 3, memory.NewEmpresaRepository(store).Count())
}

func TestSeed_Reset(t *testing.T) {
	store := memory.NewStore()
	s, _ := newSeeder(store)
	ctx := context.Background()

	_, err := s.run(ctx, false)
	require.NoError(t, err)

	res, err := s.run(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Usuarios, "reset recrea los usuarios demo")
	assert.Equal(t, 30, memory.NewProductoRepository(store).Count())
}

func TestCatalogo_Codigos(t *testing.T) {
	in := dataset[1].catalogo()
	assert.Equal(t, "ALI-18-1-001", in.Productos[0].Codigo)
	assert.Equal(t, "ALI-18-1-010", in.Productos[9].Codigo)

	in = dataset[2].catalogo()
	assert.Equal(t, "CON-61-2-003", in.Productos[2].Codigo)
}
