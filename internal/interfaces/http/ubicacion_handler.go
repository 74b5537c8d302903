package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/usecase"
)

// UbicacionHandler maneja las peticiones HTTP para Ubicacion (protegido).
type UbicacionHandler struct {
	uc *usecase.UbicacionUseCase
}

// NewUbicacionHandler construye el handler.
func NewUbicacionHandler(uc *usecase.UbicacionUseCase) *UbicacionHandler {
	return &UbicacionHandler{uc: uc}
}

// List godoc
// @Summary      Listar ubicaciones
// @Tags         ubicaciones
// @Security     Bearer
// @Produce      json
// @Param        tipo    query  string  false  "Filtro por tipo (subcadena)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.UbicacionListResponse
// @Router       /ubicaciones [get]
func (h *UbicacionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("tipo"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Espacio godoc
// @Summary      Informe de espacio por tipo de ubicación
// @Description  Capacidad total, espacio ocupado y disponible para las
// @Description  ubicaciones del tipo indicado.
// @Tags         ubicaciones
// @Security     Bearer
// @Produce      json
// @Param        tipoUbicacion  path  string  true  "ALACENA | NEVERA | CONGELADOR"
// @Success      200  {object}  dto.UbicacionEspacioResponse
// @Router       /ubicaciones/espacio/{tipoUbicacion} [get]
func (h *UbicacionHandler) Espacio(c *fiber.Ctx) error {
	out, err := h.uc.Espacio(c.Params("tipoUbicacion"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ubicación por ID
// @Tags         ubicaciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la ubicación"
// @Success      200  {object}  dto.UbicacionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ubicaciones/{id} [get]
func (h *UbicacionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ubicación
// @Tags         ubicaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearUbicacionRequest  true  "Datos de la ubicación"
// @Success      201   {object}  dto.UbicacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /ubicaciones [post]
func (h *UbicacionHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Modificar ubicación
// @Description  Editar la capacidad no revalida las existencias ya almacenadas.
// @Tags         ubicaciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la ubicación"
// @Param        body  body  dto.ModificarUbicacionRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.UbicacionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /ubicaciones/{id} [put]
func (h *UbicacionHandler) Update(c *fiber.Ctx) error {
	var in dto.ModificarUbicacionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Actualizar(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ubicación (y sus existencias en cascada)
// @Tags         ubicaciones
// @Security     Bearer
// @Param        id  path  string  true  "ID de la ubicación"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /ubicaciones/{id} [delete]
func (h *UbicacionHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
