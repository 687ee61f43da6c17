// @title                       Inventario API
// @version                     1.0
// @description                 Gestión de empresas y productos con precios multimoneda, reporte PDF y asistente de IA.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nicklcsdev/inventario-api/docs"
	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/di"
	infrapdf "github.com/nicklcsdev/inventario-api/internal/infrastructure/pdf"
	httpRouter "github.com/nicklcsdev/inventario-api/internal/interfaces/http"
	"github.com/nicklcsdev/inventario-api/pkg/config"
	"github.com/nicklcsdev/inventario-api/pkg/logger"
)

const devJWTSecret = "dev-only-secret-change-me"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("db_engine", cfg.DB.Engine).
		Str("ai_provider", cfg.AI.Provider).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: usando secreto de desarrollo")
		cfg.JWT.Secret = devJWTSecret
	}

	ctx := context.Background()
	repos, err := di.NewRepositories(ctx, cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar persistencia")
	}
	defer repos.Close()

	empresaUC := usecase.NewEmpresaUseCases(repos.Empresas)
	productoUC := usecase.NewProductoUseCases(repos.Productos)
	importarUC := inventory.NewImportarCatalogoUseCase(repos.Tx)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	aiUC := di.NewAIUseCase(cfg.AI, log)

	// Reporte: PDF con Maroto y envío opcional por SMTP
	generarReporte := reporte.NewGenerarReporteUseCase(repos.Empresas, repos.Productos, infrapdf.NewMarotoPDFGenerator())
	enviarReporte := reporte.NewEnviarReporteEmailUseCase(generarReporte, di.NewEmailSender(cfg.SMTP, log))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 40,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario API",
	}))
	app.Get("/swagger.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:        empresaUC,
		ProductoUC:       productoUC,
		AuthUC:           authUC,
		AIUC:             aiUC,
		Reporte:          generarReporte,
		EnviarReporte:    enviarReporte,
		ImportarCatalogo: importarUC,
		Metrics:          httpRouter.NewMetrics(),
		JWTSecret:        cfg.JWT.Secret,
		ServiceName:      cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
