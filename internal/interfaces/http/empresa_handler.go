package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nicklcsdev/inventario-api/internal/application/dto"
	"github.com/nicklcsdev/inventario-api/internal/application/usecase"
)

// EmpresaHandler maneja las peticiones HTTP para el recurso Empresa.
type EmpresaHandler struct {
	empresas  *usecase.EmpresaUseCases
	productos *usecase.ProductoUseCases
}

// NewEmpresaHandler construye el handler inyectando los casos de uso.
func NewEmpresaHandler(empresas *usecase.EmpresaUseCases, productos *usecase.ProductoUseCases) *EmpresaHandler {
	return &EmpresaHandler{empresas: empresas, productos: productos}
}

// Create godoc
// @Summary      Crear empresa
// @Tags         empresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EmpresaRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empresas [post]
func (h *EmpresaHandler) Create(c *fiber.Ctx) error {
	var in dto.EmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.empresas.Crear.Execute(c.UserContext(), in.NIT, in.Nombre, in.Direccion, in.Telefono)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toEmpresaResponse(out))
}

// List godoc
// @Summary      Listar empresas
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.EmpresaResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/empresas [get]
func (h *EmpresaHandler) List(c *fiber.Ctx) error {
	list, err := h.empresas.Listar.Execute(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toEmpresaList(list))
}

// GetByNIT godoc
// @Summary      Obtener empresa por NIT
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {object}  dto.EmpresaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{nit} [get]
func (h *EmpresaHandler) GetByNIT(c *fiber.Ctx) error {
	out, err := h.empresas.Obtener.Execute(c.UserContext(), c.Params("nit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toEmpresaResponse(out))
}

// Update godoc
// @Summary      Actualizar empresa
// @Description  Los campos ausentes conservan su valor. El NIT no se modifica.
// @Tags         empresas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        nit   path  string                        true  "NIT de la empresa"
// @Param        body  body  dto.ActualizarEmpresaRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.EmpresaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/empresas/{nit} [put]
func (h *EmpresaHandler) Update(c *fiber.Ctx) error {
	var in dto.ActualizarEmpresaRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.empresas.Actualizar.Execute(c.UserContext(), c.Params("nit"), usecase.ActualizarEmpresaInput{
		Nombre:    in.Nombre,
		Direccion: in.Direccion,
		Telefono:  in.Telefono,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toEmpresaResponse(out))
}

// Delete godoc
// @Summary      Eliminar empresa
// @Description  Elimina la empresa y todos sus productos.
// @Tags         empresas
// @Security     Bearer
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empresas/{nit} [delete]
func (h *EmpresaHandler) Delete(c *fiber.Ctx) error {
	if err := h.empresas.Eliminar.Execute(c.UserContext(), c.Params("nit")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Productos godoc
// @Summary      Productos de una empresa
// @Tags         empresas
// @Security     Bearer
// @Produce      json
// @Param        nit  path  string  true  "NIT de la empresa"
// @Success      200  {array}   dto.ProductoResponse
// @Router       /api/empresas/{nit}/productos [get]
func (h *EmpresaHandler) Productos(c *fiber.Ctx) error {
	list, err := h.productos.ListarPorEmpresa.Execute(c.UserContext(), c.Params("nit"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toProductoList(list))
}
