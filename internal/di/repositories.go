// Package di arma las dependencias de infraestructura según la configuración.
package di

import (
	"context"
	"fmt"

	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/domain/repository"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/memory"
	"github.com/nicklcsdev/inventario-api/internal/infrastructure/postgres"
	"github.com/nicklcsdev/inventario-api/pkg/config"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

// Repositories adaptadores de persistencia listos para inyectar en los casos de uso.
type Repositories struct {
	Engine    string
	Empresas  repository.EmpresaRepository
	Productos repository.ProductoRepository
	Users     repository.UserRepository
	Tx        inventory.TxRunner

	close func()
}

// NewRepositories elige el motor por DB_ENGINE. Con postgres abre el pool y, si DB_AUTO_MIGRATE
// está activo, aplica las migraciones embebidas antes de devolver.
func NewRepositories(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*Repositories, error) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("di")

	switch cfg.Engine {
	case config.EngineMemory:
		store := memory.NewStore()
		log.Warn().Msg("usando almacenamiento en memoria: los datos se pierden al reiniciar")
		return &Repositories{
			Engine:    config.EngineMemory,
			Empresas:  memory.NewEmpresaRepository(store),
			Productos: memory.NewProductoRepository(store),
			Users:     memory.NewUserRepository(store),
			Tx:        memory.NewTxRunner(store),
			close:     func() {},
		}, nil

	case config.EnginePostgres, "":
		if cfg.AutoMigrate {
			version, err := postgres.Migrate(cfg.ConnectionString())
			if err != nil {
				return nil, fmt.Errorf("migraciones: %w", err)
			}
			log.Info().Uint("version", version).Msg("esquema migrado")
		}
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		return &Repositories{
			Engine:    config.EnginePostgres,
			Empresas:  postgres.NewEmpresaRepository(pool),
			Productos: postgres.NewProductoRepository(pool),
			Users:     postgres.NewUserRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
			close:     pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("DB_ENGINE desconocido: %q", cfg.Engine)
}

// Close libera las conexiones del motor.
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
	}
}
