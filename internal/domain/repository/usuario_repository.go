package repository

import "github.com/acoves/despensa-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
type UsuarioRepository interface {
	// Create devuelve domain.ErrDuplicate si el email ya está registrado.
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
	Update(usuario *entity.Usuario) error
	// List filtra por nombre (subcadena, sin distinguir mayúsculas) si nombre
	// no está vacío.
	List(nombre string, limit, offset int) ([]*entity.Usuario, error)
	Delete(id string) error
}
