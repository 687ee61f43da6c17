// seed carga las empresas, productos y usuarios de demostración.
//
// Uso: go run ./cmd/seed [--reset]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/di"
	"github.com/nicklcsdev/inventario-api/pkg/config"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

func main() {
	var reset bool

	root := &cobra.Command{
		Use:          "seed",
		Short:        "Poblar la base de datos (empresas, productos, usuarios)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "seed"})
			if cfg.DB.Engine == config.EngineMemory {
				log.Warn().Msg("DB_ENGINE=memory: los datos se pierden al terminar el proceso")
			}

			ctx := cmd.Context()
			repos, err := di.NewRepositories(ctx, cfg.DB, log)
			if err != nil {
				return err
			}
			defer repos.Close()

			s := &seeder{
				empresas: repos.Empresas,
				users:    repos.Users,
				importar: inventory.NewImportarCatalogoUseCase(repos.Tx),
				auth: auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
					Secret:     cfg.JWT.Secret,
					ExpMinutes: cfg.JWT.Expiration,
					Issuer:     cfg.JWT.Issuer,
				}),
				log: log.Component("seed"),
			}
			res, err := s.run(ctx, reset)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SEEDING COMPLETADO: %d empresas, %d productos, %d usuarios nuevos.\n",
				res.Empresas, res.Productos, res.Usuarios)
			for _, u := range usuarios {
				rol := "visitante"
				if u.admin {
					rol = "admin"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s / %s\n", rol, u.email, u.password)
			}
			return nil
		},
	}
	root.Flags().BoolVar(&reset, "reset", false, "borrar empresas, productos y usuarios demo antes de cargar")

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
