package dto

import "time"

// CrearExistenciaRequest entrada para colocar una cantidad de un alimento en
// una ubicación.
type CrearExistenciaRequest struct {
	IDAlimento  string `json:"idAlimento" validate:"required"`
	IDUbicacion string `json:"idUbicacion" validate:"required"`
	Cantidad    int64  `json:"cantidad" validate:"required,gt=0"`
}

// ModificarExistenciaRequest entrada para sobrescribir la cantidad de una
// existencia. El campo es obligatorio (>= 0); no se revalida la capacidad.
type ModificarExistenciaRequest struct {
	Cantidad *int64 `json:"cantidad" validate:"required,gte=0"`
}

// MoverExistenciaRequest entrada para trasladar una existencia a otra
// ubicación.
type MoverExistenciaRequest struct {
	IDUbicacion string `json:"idUbicacion" validate:"required"`
}

// ExistenciaResponse salida de una existencia, con nombre del alimento y
// descripción de la ubicación denormalizados para lectura.
type ExistenciaResponse struct {
	ID                   string    `json:"id"`
	IDAlimento           string    `json:"idAlimento"`
	NombreAlimento       string    `json:"nombreAlimento"`
	IDUbicacion          string    `json:"idUbicacion"`
	DescripcionUbicacion string    `json:"descripcionUbicacion"`
	Cantidad             int64     `json:"cantidad"`
	FechaEntrada         time.Time `json:"fechaEntrada"`
}

// ExistenciaDetallesResponse salida detallada de una existencia: añade la
// fecha de caducidad del alimento y el tipo de la ubicación.
type ExistenciaDetallesResponse struct {
	ID                   string    `json:"id"`
	IDAlimento           string    `json:"idAlimento"`
	NombreAlimento       string    `json:"nombreAlimento"`
	FechaCaducidad       time.Time `json:"fechaCaducidad"`
	IDUbicacion          string    `json:"idUbicacion"`
	DescripcionUbicacion string    `json:"descripcionUbicacion"`
	TipoUbicacion        string    `json:"tipoUbicacion"`
	Cantidad             int64     `json:"cantidad"`
	FechaEntrada         time.Time `json:"fechaEntrada"`
}

// ExistenciaListResponse lista paginada de existencias.
type ExistenciaListResponse struct {
	Items []ExistenciaResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}
