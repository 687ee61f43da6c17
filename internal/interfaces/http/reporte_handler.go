package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/reporte"
)

// ReporteHandler descarga y envía por correo el reporte de inventario.
type ReporteHandler struct {
	generar *reporte.GenerarReporteUseCase
	enviar  *reporte.EnviarReporteEmailUseCase
}

// NewReporteHandler construye el handler.
func NewReporteHandler(generar *reporte.GenerarReporteUseCase, enviar *reporte.EnviarReporteEmailUseCase) *ReporteHandler {
	return &ReporteHandler{generar: generar, enviar: enviar}
}

// Descargar godoc
// @Summary      Descargar reporte de inventario (PDF)
// @Tags         reportes
// @Security     Bearer
// @Produce      application/pdf
// @Param        empresa  query  string  false  "NIT de la empresa; vacío incluye todas"
// @Success      200      {file}    file
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/productos/reporte [get]
func (h *ReporteHandler) Descargar(c *fiber.Ctx) error {
	rep, err := h.generar.Execute(c.UserContext(), c.Query("empresa"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rep.Archivo))
	return c.Send(rep.PDF)
}

// Enviar godoc
// @Summary      Enviar reporte de inventario por correo
// @Tags         reportes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EnviarReporteRequest  true  "Destinatario y empresa opcional"
// @Success      200   {object}  dto.EnviarReporteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/productos/reporte/email [post]
func (h *ReporteHandler) Enviar(c *fiber.Ctx) error {
	var in dto.EnviarReporteRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.enviar.Execute(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
