package entity

import (
	"strings"
	"time"
)

// Tipos válidos de alimento (perecedero o no).
const (
	TipoPerecedero   = "PERECEDERO"
	TipoNoPerecedero = "NO_PERECEDERO"
)

// Estados válidos de un alimento (envase abierto o cerrado).
const (
	EstadoAbierto = "ABIERTO"
	EstadoCerrado = "CERRADO"
)

// Alimento representa un alimento registrado en la despensa.
// Las existencias que lo referencian se eliminan en cascada al borrarlo.
type Alimento struct {
	ID             string
	Nombre         string
	Tipo           string // PERECEDERO | NO_PERECEDERO
	Estado         string // ABIERTO | CERRADO
	FechaCaducidad time.Time // solo se usa la parte de fecha
}

// NormalizarTipoAlimento convierte la entrada a la etiqueta canónica.
// Acepta cualquier combinación de mayúsculas/minúsculas y espacios o guiones.
// Devuelve "" si el valor no corresponde a ningún tipo válido.
func NormalizarTipoAlimento(s string) string {
	switch strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), " ", "_")) {
	case TipoPerecedero:
		return TipoPerecedero
	case TipoNoPerecedero:
		return TipoNoPerecedero
	}
	return ""
}

// NormalizarEstadoAlimento convierte la entrada a la etiqueta canónica
// (ABIERTO o CERRADO). Devuelve "" si el valor no es válido.
func NormalizarEstadoAlimento(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case EstadoAbierto:
		return EstadoAbierto
	case EstadoCerrado:
		return EstadoCerrado
	}
	return ""
}
