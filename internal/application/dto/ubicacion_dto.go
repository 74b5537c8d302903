package dto

// CrearUbicacionRequest entrada para crear una ubicación.
type CrearUbicacionRequest struct {
	Descripcion   string `json:"descripcion" validate:"required"`
	TipoUbicacion string `json:"tipoUbicacion" validate:"required"`
	Capacidad     int64  `json:"capacidad" validate:"required,gt=0"`
}

// ModificarUbicacionRequest entrada para modificar una ubicación. Los campos
// nil se interpretan como "sin cambio". Editar la capacidad no revalida las
// existencias ya almacenadas.
type ModificarUbicacionRequest struct {
	Descripcion   *string `json:"descripcion"`
	TipoUbicacion *string `json:"tipoUbicacion"`
	Capacidad     *int64  `json:"capacidad"`
}

// UbicacionResponse salida de una ubicación.
type UbicacionResponse struct {
	ID            string `json:"id"`
	Descripcion   string `json:"descripcion"`
	TipoUbicacion string `json:"tipoUbicacion"`
	Capacidad     int64  `json:"capacidad"`
}

// UbicacionListResponse lista paginada de ubicaciones.
type UbicacionListResponse struct {
	Items []UbicacionResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// UbicacionEspacioResponse informe de espacio para un tipo de ubicación.
type UbicacionEspacioResponse struct {
	TipoUbicacion      string `json:"tipoUbicacion"`
	EspacioTotal       int64  `json:"espacioTotal"`
	EspacioOcupado     int64  `json:"espacioOcupado"`
	EspacioDisponible  int64  `json:"espacioDisponible"`
}
