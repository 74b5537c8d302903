package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrUbicacionLlena       = errors.New("ubicación llena")
	ErrSinExistencias       = errors.New("no hay existencias disponibles")
	ErrCantidadInsuficiente = errors.New("cantidad insuficiente en la existencia más antigua")
)
