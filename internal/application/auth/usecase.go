package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
	"github.com/acoves/despensa-api/pkg/blacklist"
	"github.com/acoves/despensa-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: registro, login y logout.
type UseCase struct {
	usuarioRepo repository.UsuarioRepository
	tokens      *blacklist.Blacklist
	jwtCfg      JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(usuarioRepo repository.UsuarioRepository, tokens *blacklist.Blacklist, jwtCfg JWTConfig) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, tokens: tokens, jwtCfg: jwtCfg}
}

// Register crea un usuario (rol USUARIO si no se indica otro), hashea la
// contraseña con bcrypt y devuelve un token recién emitido.
// Devuelve domain.ErrDuplicate si el email ya está registrado.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	rol := entity.RolUsuario
	if in.Rol != "" {
		rol = entity.NormalizarRol(in.Rol)
		if rol == "" {
			return nil, fmt.Errorf("%w: rol %q", domain.ErrInvalidInput, in.Rol)
		}
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
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
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return uc.emitir(usuario)
}

// Login verifica email/password y devuelve un JWT con los datos del usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.emitir(usuario)
}

// Logout revoca el token presentado hasta su expiración natural. Un token
// inválido o ya expirado no produce error: el resultado es el mismo, no
// puede volver a usarse.
func (uc *UseCase) Logout(token string) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil || claims.ExpiresAt == nil {
		return
	}
	uc.tokens.Revoke(token, time.Until(claims.ExpiresAt.Time))
}

func (uc *UseCase) emitir(usuario *entity.Usuario) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Email, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		Usuario: dto.UsuarioDetallesResponse{
			ID:     usuario.ID,
			Nombre: usuario.Nombre,
			Email:  usuario.Email,
			Rol:    usuario.Rol,
		},
	}, nil
}
