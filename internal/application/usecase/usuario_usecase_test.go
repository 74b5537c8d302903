package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/usecase"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/infrastructure/memory"
)

func newUsuarioUC(t *testing.T) (*usecase.UsuarioUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewUsuarioUseCase(store.Usuarios()), store
}

func TestUsuarioCrear_PasswordHasheada(t *testing.T) {
	uc, store := newUsuarioUC(t)

	out, err := uc.Crear(dto.CrearUsuarioRequest{
		Nombre:   "Ana",
		Email:    "ana@example.com",
		Password: "super-secreta",
		Rol:      "administrador",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RolAdministrador, out.Rol, "el rol debe normalizarse")

	guardado, err := store.Usuarios().GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, guardado)
	assert.NotEqual(t, "super-secreta", guardado.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("super-secreta")))
}

func TestUsuarioCrear_EmailDuplicado(t *testing.T) {
	uc, _ := newUsuarioUC(t)
	_, err := uc.Crear(dto.CrearUsuarioRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "super-secreta", Rol: entity.RolUsuario,
	})
	require.NoError(t, err)

	_, err = uc.Crear(dto.CrearUsuarioRequest{
		Nombre: "Otra Ana", Email: "ana@example.com", Password: "otra-clave-larga", Rol: entity.RolUsuario,
	})

	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUsuarioCrear_RolInvalido(t *testing.T) {
	uc, _ := newUsuarioUC(t)

	_, err := uc.Crear(dto.CrearUsuarioRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "super-secreta", Rol: "SUPERUSUARIO",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUsuarioObtenerPorEmail(t *testing.T) {
	uc, _ := newUsuarioUC(t)
	_, err := uc.Crear(dto.CrearUsuarioRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "super-secreta", Rol: entity.RolUsuario,
	})
	require.NoError(t, err)

	out, err := uc.ObtenerPorEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.Nombre)

	_, err = uc.ObtenerPorEmail("nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUsuarioActualizar_SoloCamposEnviados(t *testing.T) {
	uc, store := newUsuarioUC(t)
	out, err := uc.Crear(dto.CrearUsuarioRequest{
		Nombre: "Ana", Email: "ana@example.com", Password: "super-secreta", Rol: entity.RolUsuario,
	})
	require.NoError(t, err)

	rol := "administrador"
	actualizado, err := uc.Actualizar(out.ID, dto.ModificarUsuarioRequest{Rol: &rol})
	require.NoError(t, err)

	assert.Equal(t, entity.RolAdministrador, actualizado.Rol)
	assert.Equal(t, "ana@example.com", actualizado.Email)

	guardado, _ := store.Usuarios().GetByID(out.ID)
	require.NotNil(t, guardado)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.PasswordHash), []byte("super-secreta")),
		"la contraseña no debe cambiar si no se envía")
}

func TestUsuarioEliminar_NoEncontrado(t *testing.T) {
	uc, _ := newUsuarioUC(t)

	err := uc.Eliminar("no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
