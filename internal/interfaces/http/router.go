package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/auth"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
	"github.com/nicklcsdev/inventario-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmpresaUC        *usecase.EmpresaUseCases
	ProductoUC       *usecase.ProductoUseCases
	AuthUC           *auth.AuthUseCase
	AIUC             *usecase.AIUseCase
	Reporte          *reporte.GenerarReporteUseCase
	EnviarReporte    *reporte.EnviarReporteEmailUseCase
	ImportarCatalogo *inventory.ImportarCatalogoUseCase
	Metrics          *Metrics // opcional
	JWTSecret        string
	ServiceName      string
}

// Router registra las rutas de la API.
// Lectura: cualquier usuario autenticado. Escritura: solo rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	authenticated := AuthMiddleware(deps.JWTSecret)
	admin := RequireRole(entity.RoleAdmin)

	// Empresas
	empresas := api.Group("/empresas", authenticated)
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC, deps.ProductoUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Post("/", admin, empresaHandler.Create)
	empresas.Get("/:nit/productos", empresaHandler.Productos)
	empresas.Get("/:nit", empresaHandler.GetByNIT)
	empresas.Put("/:nit", admin, empresaHandler.Update)
	empresas.Delete("/:nit", admin, empresaHandler.Delete)

	// Productos. Las rutas fijas van antes de /:id.
	productos := api.Group("/productos", authenticated)
	productoHandler := NewProductoHandler(deps.ProductoUC)
	reporteHandler := NewReporteHandler(deps.Reporte, deps.EnviarReporte)
	aiHandler := NewAIHandler(deps.AIUC)

	productos.Get("/reporte", reporteHandler.Descargar)
	productos.Post("/reporte/email", reporteHandler.Enviar)
	productos.Post("/generar-descripcion", aiHandler.GenerarDescripcion)
	productos.Post("/voz", aiHandler.ProductoDesdeVoz)

	productos.Get("/", productoHandler.List)
	productos.Post("/", admin, productoHandler.Create)
	productos.Get("/:id", productoHandler.GetByID)
	productos.Put("/:id", admin, productoHandler.Update)
	productos.Delete("/:id", admin, productoHandler.Delete)

	// Catálogo (carga masiva)
	catalogo := api.Group("/catalogo", authenticated, admin)
	catalogoHandler := NewCatalogoHandler(deps.ImportarCatalogo)
	catalogo.Post("/importar", catalogoHandler.Importar)
}
