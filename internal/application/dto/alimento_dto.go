package dto

import "time"

// CrearAlimentoRequest entrada para registrar un alimento. El estado inicial
// siempre es CERRADO; la fecha de caducidad debe ser estrictamente futura.
type CrearAlimentoRequest struct {
	Nombre         string    `json:"nombre" validate:"required"`
	Tipo           string    `json:"tipo" validate:"required"`
	FechaCaducidad time.Time `json:"fechaCaducidad" validate:"required"`
}

// ModificarAlimentoRequest entrada para modificar un alimento. Los campos nil
// se interpretan como "sin cambio".
type ModificarAlimentoRequest struct {
	Nombre         *string    `json:"nombre"`
	Tipo           *string    `json:"tipo"`
	Estado         *string    `json:"estado"`
	FechaCaducidad *time.Time `json:"fechaCaducidad"`
}

// AlimentoResponse salida de un alimento.
type AlimentoResponse struct {
	ID             string    `json:"id"`
	Nombre         string    `json:"nombre"`
	Tipo           string    `json:"tipo"`
	Estado         string    `json:"estado"`
	FechaCaducidad time.Time `json:"fechaCaducidad"`
}

// AlimentoListResponse lista paginada de alimentos.
type AlimentoListResponse struct {
	Items []AlimentoResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
