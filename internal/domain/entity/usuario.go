package entity

import "strings"

// Roles válidos para Usuario.
const (
	RolUsuario       = "USUARIO"
	RolAdministrador = "ADMINISTRADOR"
)

// Usuario representa un usuario del sistema.
type Usuario struct {
	ID           string
	Nombre       string
	Email        string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Rol          string // USUARIO | ADMINISTRADOR
}

// NormalizarRol convierte la entrada a la etiqueta canónica de rol.
// Devuelve "" si el valor no corresponde a ningún rol válido.
func NormalizarRol(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case RolUsuario:
		return RolUsuario
	case RolAdministrador:
		return RolAdministrador
	}
	return ""
}
