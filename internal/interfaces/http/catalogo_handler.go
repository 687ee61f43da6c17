package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/inventory"
)

// CatalogoHandler carga masiva de una empresa con sus productos.
type CatalogoHandler struct {
	uc *inventory.ImportarCatalogoUseCase
}

// NewCatalogoHandler construye el handler.
func NewCatalogoHandler(uc *inventory.ImportarCatalogoUseCase) *CatalogoHandler {
	return &CatalogoHandler{uc: uc}
}

// Importar godoc
// @Summary      Importar catálogo
// @Description  Crea o reemplaza la empresa y sus productos en una sola transacción.
// @Description  Si un producto es inválido no se guarda nada.
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CatalogoRequest  true  "Empresa y productos"
// @Success      201   {object}  dto.CatalogoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/catalogo/importar [post]
func (h *CatalogoHandler) Importar(c *fiber.Ctx) error {
	var in dto.CatalogoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Execute(c.UserContext(), toCatalogoInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CatalogoResponse{
		Empresa:   toEmpresaResponse(res.Empresa),
		Productos: toProductoList(res.Productos),
	})
}
