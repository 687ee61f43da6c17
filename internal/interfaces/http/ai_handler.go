package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
)

// MaxAudioBytes tamaño máximo aceptado para un dictado.
const MaxAudioBytes = 10 << 20

// AIHandler maneja los endpoints del asistente de IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerarDescripcion godoc
// @Summary      Generar descripción comercial con IA
// @Description  Redacta una descripción de venta (máx. 40 palabras) a partir del nombre y las características.
// @Description  Timeout interno de 10 s.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescripcionRequest  true  "nombre (obligatorio) y caracteristicas"
// @Success      200   {object}  dto.DescripcionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/productos/generar-descripcion [post]
func (h *AIHandler) GenerarDescripcion(c *fiber.Ctx) error {
	var req dto.DescripcionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GenerarDescripcion(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductoDesdeVoz godoc
// @Summary      Alta de producto por voz
// @Description  Transcribe el audio y devuelve un borrador de producto. No se persiste: el cliente
// @Description  lo confirma enviándolo a POST /api/productos.
// @Tags         ai
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Audio del dictado (webm, mp3, wav, m4a)"
// @Success      200    {object}  dto.VozResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      413    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/productos/voz [post]
func (h *AIHandler) ProductoDesdeVoz(c *fiber.Ctx) error {
	fh, err := c.FormFile("audio")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_AUDIO", Message: "se requiere el archivo 'audio'"})
	}
	if fh.Size > MaxAudioBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "AUDIO_TOO_LARGE", Message: "el audio supera los 10 MB"})
	}
	f, err := fh.Open()
	if err != nil {
		return invalidBody(c)
	}
	defer f.Close()

	audio, err := io.ReadAll(io.LimitReader(f, MaxAudioBytes))
	if err != nil {
		return invalidBody(c)
	}

	out, err := h.uc.ProductoDesdeVoz(c.UserContext(), audio, fh.Filename)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
