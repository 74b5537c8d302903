package entity

import "strings"

// Tipos válidos de ubicación.
const (
	UbicacionAlacena    = "ALACENA"
	UbicacionNevera     = "NEVERA"
	UbicacionCongelador = "CONGELADOR"
)

// Ubicacion representa un compartimento físico de almacenamiento con
// capacidad finita. La capacidad es el total de unidades que puede contener
// sumando todas las existencias que la referencian.
type Ubicacion struct {
	ID            string
	Descripcion   string
	TipoUbicacion string // ALACENA | NEVERA | CONGELADOR
	Capacidad     int64  // > 0
}

// NormalizarTipoUbicacion convierte la entrada a la etiqueta canónica.
// Devuelve "" si el valor no corresponde a ningún tipo válido.
func NormalizarTipoUbicacion(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case UbicacionAlacena:
		return UbicacionAlacena
	case UbicacionNevera:
		return UbicacionNevera
	case UbicacionCongelador:
		return UbicacionCongelador
	}
	return ""
}
