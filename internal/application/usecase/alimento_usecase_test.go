package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/usecase"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/infrastructure/memory"
)

func newAlimentoUC(t *testing.T) (*usecase.AlimentoUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewAlimentoUseCase(store.Alimentos()), store
}

// El estado inicial siempre es CERRADO, aunque el cliente no lo envíe.
func TestAlimentoCrear_EstadoInicialCerrado(t *testing.T) {
	uc, _ := newAlimentoUC(t)

	out, err := uc.Crear(dto.CrearAlimentoRequest{
		Nombre:         "Yogur",
		Tipo:           "perecedero",
		FechaCaducidad: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCerrado, out.Estado)
	assert.Equal(t, entity.TipoPerecedero, out.Tipo, "el tipo debe normalizarse a su etiqueta canónica")
}

func TestAlimentoCrear_FechaCaducidadPasadaRechazada(t *testing.T) {
	uc, _ := newAlimentoUC(t)

	_, err := uc.Crear(dto.CrearAlimentoRequest{
		Nombre:         "Yogur",
		Tipo:           entity.TipoPerecedero,
		FechaCaducidad: time.Now().Add(-time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAlimentoCrear_TipoInvalido(t *testing.T) {
	uc, _ := newAlimentoUC(t)

	_, err := uc.Crear(dto.CrearAlimentoRequest{
		Nombre:         "Yogur",
		Tipo:           "congelable",
		FechaCaducidad: time.Now().Add(72 * time.Hour),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAlimentoActualizar_CamposNilNoCambian(t *testing.T) {
	uc, _ := newAlimentoUC(t)
	out, err := uc.Crear(dto.CrearAlimentoRequest{
		Nombre:         "Yogur",
		Tipo:           entity.TipoPerecedero,
		FechaCaducidad: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)

	estado := "abierto"
	actualizado, err := uc.Actualizar(out.ID, dto.ModificarAlimentoRequest{Estado: &estado})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoAbierto, actualizado.Estado)
	assert.Equal(t, "Yogur", actualizado.Nombre, "el nombre no debe cambiar si no se envía")
	assert.Equal(t, entity.TipoPerecedero, actualizado.Tipo)
}

func TestAlimentoActualizar_NoEncontrado(t *testing.T) {
	uc, _ := newAlimentoUC(t)

	_, err := uc.Actualizar("no-existe", dto.ModificarAlimentoRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Solo los alimentos que caducan dentro de la próxima semana entran en el
// listado de caducidad.
func TestAlimentoListarCaducan_VentanaDeUnaSemana(t *testing.T) {
	uc, store := newAlimentoUC(t)
	require.NoError(t, store.Alimentos().Create(&entity.Alimento{
		ID: "a-pronto", Nombre: "Pescado", Tipo: entity.TipoPerecedero,
		Estado: entity.EstadoCerrado, FechaCaducidad: time.Now().Add(2 * 24 * time.Hour),
	}))
	require.NoError(t, store.Alimentos().Create(&entity.Alimento{
		ID: "a-lejano", Nombre: "Arroz", Tipo: entity.TipoNoPerecedero,
		Estado: entity.EstadoCerrado, FechaCaducidad: time.Now().Add(90 * 24 * time.Hour),
	}))
	require.NoError(t, store.Alimentos().Create(&entity.Alimento{
		ID: "a-pasado", Nombre: "Leche caducada", Tipo: entity.TipoPerecedero,
		Estado: entity.EstadoAbierto, FechaCaducidad: time.Now().Add(-24 * time.Hour),
	}))

	out, err := uc.ListarCaducan(dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Pescado", out.Items[0].Nombre)
}

func TestAlimentoEliminar_CascadaDeExistencias(t *testing.T) {
	uc, store := newAlimentoUC(t)
	out, err := uc.Crear(dto.CrearAlimentoRequest{
		Nombre:         "Yogur",
		Tipo:           entity.TipoPerecedero,
		FechaCaducidad: time.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-1", IDAlimento: out.ID, IDUbicacion: "u-1",
		Cantidad: 3, FechaEntrada: time.Now(),
	}))

	require.NoError(t, uc.Eliminar(out.ID))

	e, err := store.Existencias().GetByID("e-1")
	require.NoError(t, err)
	assert.Nil(t, e, "las existencias del alimento deben eliminarse en cascada")
}
