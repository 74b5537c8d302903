package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/usecase"
)

// AlimentoHandler maneja las peticiones HTTP para Alimento (protegido).
type AlimentoHandler struct {
	uc *usecase.AlimentoUseCase
}

// NewAlimentoHandler construye el handler.
func NewAlimentoHandler(uc *usecase.AlimentoUseCase) *AlimentoHandler {
	return &AlimentoHandler{uc: uc}
}

// List godoc
// @Summary      Listar alimentos
// @Tags         alimentos
// @Security     Bearer
// @Produce      json
// @Param        nombre  query  string  false  "Filtro por nombre (subcadena)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.AlimentoListResponse
// @Router       /alimentos [get]
func (h *AlimentoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("nombre"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCaducan godoc
// @Summary      Alimentos que caducan en la próxima semana
// @Tags         alimentos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlimentoListResponse
// @Router       /alimentos/caducan [get]
func (h *AlimentoHandler) ListCaducan(c *fiber.Ctx) error {
	out, err := h.uc.ListarCaducan(pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener alimento por ID
// @Tags         alimentos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del alimento"
// @Success      200  {object}  dto.AlimentoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /alimentos/{id} [get]
func (h *AlimentoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Obtener(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar alimento (estado inicial CERRADO)
// @Tags         alimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearAlimentoRequest  true  "Datos del alimento"
// @Success      201   {object}  dto.AlimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /alimentos [post]
func (h *AlimentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearAlimentoRequest
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
// @Summary      Modificar alimento
// @Tags         alimentos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del alimento"
// @Param        body  body  dto.ModificarAlimentoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.AlimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /alimentos/{id} [put]
func (h *AlimentoHandler) Update(c *fiber.Ctx) error {
	var in dto.ModificarAlimentoRequest
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
// @Summary      Eliminar alimento (y sus existencias en cascada)
// @Tags         alimentos
// @Security     Bearer
// @Param        id  path  string  true  "ID del alimento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /alimentos/{id} [delete]
func (h *AlimentoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
