package dto

// CrearUsuarioRequest entrada para crear un usuario.
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Rol      string `json:"rol" validate:"required"`
}

// ModificarUsuarioRequest entrada para modificar un usuario. Los campos nil o
// vacíos se interpretan como "sin cambio".
type ModificarUsuarioRequest struct {
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Rol      *string `json:"rol"`
}

// UsuarioResponse salida básica de un usuario (listados).
type UsuarioResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

// UsuarioDetallesResponse salida con detalles de un usuario.
type UsuarioDetallesResponse struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// UsuarioListResponse lista paginada de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
