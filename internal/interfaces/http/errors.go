package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
)

// respondError traduce un error de dominio a una respuesta HTTP. Los casos de
// uso envuelven los centinelas con fmt.Errorf("%w: ..."), así que el mensaje
// que llega aquí ya lleva el detalle (p. ej. la descripción de la ubicación
// llena).
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrUbicacionLlena):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UBICACION_LLENA", Message: err.Error()})
	case errors.Is(err, domain.ErrSinExistencias):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SIN_EXISTENCIAS", Message: err.Error()})
	case errors.Is(err, domain.ErrCantidadInsuficiente):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CANTIDAD_INSUFICIENTE", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// pageFromQuery lee limit/offset de la query con los defaults de la API.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	return page
}
