package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acoves/despensa-api/internal/application/auth"
	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/infrastructure/memory"
	"github.com/acoves/despensa-api/pkg/blacklist"
	pkgjwt "github.com/acoves/despensa-api/pkg/jwt"
)

const (
	authTestSecret = "test-secret-key-for-unit-tests"
	authTestIssuer = "despensa-api-test"
)

func newAuthUC(t *testing.T) (*auth.UseCase, *blacklist.Blacklist) {
	t.Helper()
	store := memory.NewStore()
	tokens := blacklist.New()
	uc := auth.NewUseCase(store.Usuarios(), tokens, auth.JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     authTestIssuer,
	})
	return uc, tokens
}

func registrar(t *testing.T, uc *auth.UseCase) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Register(dto.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "super-secreta",
	})
	require.NoError(t, err)
	return out
}

// Sin rol explícito el registro asigna USUARIO y devuelve un token válido
// con los claims del usuario.
func TestRegister_RolPorDefectoYTokenValido(t *testing.T) {
	uc, _ := newAuthUC(t)

	out := registrar(t, uc)

	assert.Equal(t, entity.RolUsuario, out.Usuario.Rol)
	require.NotEmpty(t, out.Token)

	claims, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, entity.RolUsuario, claims.Rol)
	assert.Equal(t, authTestIssuer, claims.Issuer)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC(t)
	registrar(t, uc)

	_, err := uc.Register(dto.RegisterRequest{
		Nombre:   "Otra Ana",
		Email:    "ana@example.com",
		Password: "otra-clave-larga",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newAuthUC(t)

	_, err := uc.Register(dto.RegisterRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "super-secreta",
		Rol:      "SUPERUSUARIO",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	uc, _ := newAuthUC(t)
	registrar(t, uc)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "super-secreta"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "Ana", out.Usuario.Nombre)
}

// Email desconocido y contraseña incorrecta fallan con el mismo error, sin
// distinguir el motivo.
func TestLogin_CredencialesIncorrectas(t *testing.T) {
	uc, _ := newAuthUC(t)
	registrar(t, uc)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "super-secreta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogout_RevocaElToken(t *testing.T) {
	uc, tokens := newAuthUC(t)
	out := registrar(t, uc)
	require.False(t, tokens.IsRevoked(out.Token))

	uc.Logout(out.Token)

	assert.True(t, tokens.IsRevoked(out.Token))
}

// Un token con firma inválida no se añade a la lista de revocados.
func TestLogout_TokenInvalidoNoRevoca(t *testing.T) {
	uc, tokens := newAuthUC(t)

	uc.Logout("token.invalido.aqui")

	assert.Equal(t, 0, tokens.Len())
}
