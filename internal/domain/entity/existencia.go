package entity

import "time"

// Existencia representa una cantidad de un alimento guardada en una ubicación
// desde una fecha de entrada. Solo guarda las claves del alimento y la
// ubicación (referencias de consulta, sin colecciones inversas en memoria).
// Una existencia cuya cantidad llega exactamente a cero se elimina, nunca se
// conserva como fila a cero.
type Existencia struct {
	ID           string
	IDAlimento   string
	IDUbicacion  string
	Cantidad     int64 // > 0 mientras exista la fila
	FechaEntrada time.Time
}

// ExistenciaDetalle es el modelo de lectura de una existencia con los campos
// denormalizados del alimento y la ubicación (consultas con join).
type ExistenciaDetalle struct {
	Existencia
	NombreAlimento       string
	FechaCaducidad       time.Time
	DescripcionUbicacion string
	TipoUbicacion        string
}
