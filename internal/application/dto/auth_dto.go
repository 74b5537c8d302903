package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest entrada de auto-registro. Si Rol viene vacío se asigna
// USUARIO.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol"`
}

// AuthResponse token emitido tras login o registro.
type AuthResponse struct {
	Token   string                  `json:"token"`
	Usuario UsuarioDetallesResponse `json:"usuario"`
}
