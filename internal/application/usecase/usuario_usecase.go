package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

// UsuarioUseCase operaciones CRUD sobre usuarios (rutas de administración).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase construye el caso de uso de usuarios.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// Listar devuelve los usuarios, filtrados por nombre si se indica.
func (uc *UsuarioUseCase) Listar(nombre string, page dto.PageRequest) (*dto.UsuarioListResponse, error) {
	page.DefaultPage()
	usuarios, err := uc.repo.List(nombre, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		items = append(items, dto.UsuarioResponse{ID: u.ID, Nombre: u.Nombre, Email: u.Email})
	}
	return &dto.UsuarioListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Obtener devuelve los detalles de un usuario por su id.
func (uc *UsuarioUseCase) Obtener(id string) (*dto.UsuarioDetallesResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: el usuario con id %s no existe", domain.ErrNotFound, id)
	}
	return toUsuarioDetalles(usuario), nil
}

// ObtenerPorEmail devuelve los detalles de un usuario por su email.
func (uc *UsuarioUseCase) ObtenerPorEmail(email string) (*dto.UsuarioDetallesResponse, error) {
	usuario, err := uc.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: el usuario con email %s no existe", domain.ErrNotFound, email)
	}
	return toUsuarioDetalles(usuario), nil
}

// Crear registra un usuario nuevo con la contraseña hasheada con bcrypt.
// Devuelve domain.ErrDuplicate si el email ya está en uso.
func (uc *UsuarioUseCase) Crear(in dto.CrearUsuarioRequest) (*dto.UsuarioDetallesResponse, error) {
	rol := entity.NormalizarRol(in.Rol)
	if rol == "" {
		return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Rol)
	}
	existente, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("%w: el email %s ya está en uso", domain.ErrDuplicate, in.Email)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Rol:          rol,
	}
	if err := uc.repo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioDetalles(usuario), nil
}

// Actualizar modifica un usuario; los campos nil o vacíos no cambian.
func (uc *UsuarioUseCase) Actualizar(id string, in dto.ModificarUsuarioRequest) (*dto.UsuarioDetallesResponse, error) {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, fmt.Errorf("%w: el usuario con id %s no existe", domain.ErrNotFound, id)
	}
	if in.Nombre != nil && *in.Nombre != "" {
		usuario.Nombre = *in.Nombre
	}
	if in.Email != nil && *in.Email != "" {
		usuario.Email = *in.Email
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		usuario.PasswordHash = string(hash)
	}
	if in.Rol != nil && *in.Rol != "" {
		rol := entity.NormalizarRol(*in.Rol)
		if rol == "" {
			return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, *in.Rol)
		}
		usuario.Rol = rol
	}
	if err := uc.repo.Update(usuario); err != nil {
		return nil, err
	}
	return toUsuarioDetalles(usuario), nil
}

// Eliminar borra un usuario por su id.
func (uc *UsuarioUseCase) Eliminar(id string) error {
	usuario, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if usuario == nil {
		return fmt.Errorf("%w: el usuario con id %s no existe", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toUsuarioDetalles(u *entity.Usuario) *dto.UsuarioDetallesResponse {
	return &dto.UsuarioDetallesResponse{
		ID:     u.ID,
		Nombre: u.Nombre,
		Email:  u.Email,
		Rol:    u.Rol,
	}
}
