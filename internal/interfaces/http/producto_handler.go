package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP para el recurso Producto.
type ProductoHandler struct {
	uc *usecase.ProductoUseCases
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCases) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductoRequest  true  "Producto con sus precios por moneda"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Crear.Execute(c.UserContext(), in.Codigo, in.Nombre, in.Caracteristicas, in.EmpresaNIT, in.Precios)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toProductoResponse(out))
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        empresa  query  string  false  "Filtrar por NIT de empresa"
// @Success      200      {array}   dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) List(c *fiber.Ctx) error {
	if nit := strings.TrimSpace(c.Query("empresa")); nit != "" {
		list, err := h.uc.ListarPorEmpresa.Execute(c.UserContext(), nit)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(toProductoList(list))
	}
	list, err := h.uc.Listar.Execute(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductoList(list))
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductoHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	out, err := h.uc.Obtener.Execute(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductoResponse(out))
}

// Update godoc
// @Summary      Actualizar producto
// @Description  Los campos ausentes conservan su valor; precios, si viene, reemplaza el mapa completo.
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int                            true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Actualizar.Execute(c.UserContext(), id, toActualizarProductoInput(in))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductoResponse(out))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         productos
// @Security     Bearer
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.uc.Eliminar.Execute(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}
