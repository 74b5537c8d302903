package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/existencia"
)

// ExistenciaHandler maneja las peticiones HTTP para Existencia (protegido).
type ExistenciaHandler struct {
	uc *existencia.UseCase
}

// NewExistenciaHandler construye el handler.
func NewExistenciaHandler(uc *existencia.UseCase) *ExistenciaHandler {
	return &ExistenciaHandler{uc: uc}
}

// List godoc
// @Summary      Listar existencias
// @Tags         existencias
// @Security     Bearer
// @Produce      json
// @Param        idAlimento   query  string  false  "Filtro por alimento"
// @Param        idUbicacion  query  string  false  "Filtro por ubicación"
// @Param        limit        query  int     false  "Límite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ExistenciaListResponse
// @Router       /existencias [get]
func (h *ExistenciaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Query("idAlimento"), c.Query("idUbicacion"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCaducan godoc
// @Summary      Existencias cuyo alimento caduca en las próximas dos semanas
// @Description  Ordenadas por tipo de ubicación ascendente, limitadas a size.
// @Tags         existencias
// @Security     Bearer
// @Produce      json
// @Param        size  path  int  true  "Máximo de resultados"
// @Success      200   {array}  dto.ExistenciaDetallesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /existencias/caducan/{size} [get]
func (h *ExistenciaHandler) ListCaducan(c *fiber.Ctx) error {
	size, err := strconv.Atoi(c.Params("size"))
	if err != nil || size <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "size debe ser un entero positivo"})
	}
	out, err := h.uc.ListarCaducanPorUbicacion(size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Consultar existencia por ID
// @Tags         existencias
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la existencia"
// @Success      200  {object}  dto.ExistenciaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /existencias/{id} [get]
func (h *ExistenciaHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.Consultar(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Colocar una cantidad de un alimento en una ubicación
// @Description  Falla con 409 UBICACION_LLENA si la cantidad no cabe en el
// @Description  espacio libre de la ubicación.
// @Tags         existencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearExistenciaRequest  true  "Datos de la existencia"
// @Success      201   {object}  dto.ExistenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /existencias [post]
func (h *ExistenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearExistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Sobrescribir la cantidad de una existencia
// @Description  No revalida la capacidad de la ubicación.
// @Tags         existencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la existencia"
// @Param        body  body  dto.ModificarExistenciaRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.ExistenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /existencias/{id} [put]
func (h *ExistenciaHandler) Update(c *fiber.Ctx) error {
	var in dto.ModificarExistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Cantidad == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad es requerida"})
	}
	out, err := h.uc.ActualizarCantidad(c.Params("id"), *in.Cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Mover godoc
// @Summary      Trasladar una existencia a otra ubicación
// @Description  El traslado no comprueba la capacidad de la ubicación destino.
// @Tags         existencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la existencia"
// @Param        body  body  dto.MoverExistenciaRequest  true  "Ubicación destino"
// @Success      200   {object}  dto.ExistenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /existencias/mover/{id} [put]
func (h *ExistenciaHandler) Mover(c *fiber.Ctx) error {
	var in dto.MoverExistenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Mover(c.Params("id"), in.IDUbicacion)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Consumir godoc
// @Summary      Consumir una cantidad de la existencia más antigua
// @Description  Descuenta de la existencia con fecha de entrada más antigua
// @Description  para el par (alimento, ubicación). Si queda exactamente a
// @Description  cero, la existencia se elimina.
// @Tags         existencias
// @Security     Bearer
// @Produce      json
// @Param        idAlimento   query  string  true  "ID del alimento"
// @Param        idUbicacion  query  string  true  "ID de la ubicación"
// @Param        cantidad     query  int     true  "Cantidad a consumir"
// @Success      200  {object}  dto.ExistenciaResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /existencias/consumir [post]
func (h *ExistenciaHandler) Consumir(c *fiber.Ctx) error {
	idAlimento := c.Query("idAlimento")
	idUbicacion := c.Query("idUbicacion")
	if idAlimento == "" || idUbicacion == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "idAlimento e idUbicacion son requeridos"})
	}
	cantidad, err := strconv.ParseInt(c.Query("cantidad"), 10, 64)
	if err != nil || cantidad <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad debe ser un entero positivo"})
	}
	out, err := h.uc.Consumir(c.Context(), idAlimento, idUbicacion, cantidad)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar existencia
// @Tags         existencias
// @Security     Bearer
// @Param        id  path  string  true  "ID de la existencia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /existencias/{id} [delete]
func (h *ExistenciaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
