package existencia_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/application/existencia"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	idLeche  = "00000000-0000-0000-0000-00000000000a"
	idNevera = "00000000-0000-0000-0000-00000000000b"
)

// newTestUseCase construye el caso de uso sobre un almacén en memoria con un
// alimento ("Leche") y una nevera de capacidad 10 ya registrados.
func newTestUseCase(t *testing.T) (*existencia.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Alimentos().Create(&entity.Alimento{
		ID:             idLeche,
		Nombre:         "Leche",
		Tipo:           entity.TipoPerecedero,
		Estado:         entity.EstadoCerrado,
		FechaCaducidad: time.Now().Add(5 * 24 * time.Hour),
	}))
	require.NoError(t, store.Ubicaciones().Create(&entity.Ubicacion{
		ID:            idNevera,
		Descripcion:   "Nevera de la cocina",
		TipoUbicacion: entity.UbicacionNevera,
		Capacidad:     10,
	}))
	uc := existencia.NewUseCase(store.Existencias(), store.Alimentos(), store.Ubicaciones(), store)
	return uc, store
}

func colocar(t *testing.T, uc *existencia.UseCase, cantidad int64) *dto.ExistenciaResponse {
	t.Helper()
	out, err := uc.Crear(context.Background(), dto.CrearExistenciaRequest{
		IDAlimento:  idLeche,
		IDUbicacion: idNevera,
		Cantidad:    cantidad,
	})
	require.NoError(t, err)
	return out
}

func ocupado(t *testing.T, store *memory.Store) int64 {
	t.Helper()
	total, err := store.Existencias().SumCantidadByUbicacion(idNevera)
	require.NoError(t, err)
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Colocación con control de capacidad
// ──────────────────────────────────────────────────────────────────────────────

func TestCrear_RespuestaDenormalizada(t *testing.T) {
	uc, _ := newTestUseCase(t)

	out := colocar(t, uc, 4)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Leche", out.NombreAlimento)
	assert.Equal(t, "Nevera de la cocina", out.DescripcionUbicacion)
	assert.Equal(t, int64(4), out.Cantidad)
	assert.False(t, out.FechaEntrada.IsZero(), "la fecha de entrada debe asignarse al colocar")
}

// Llenar la nevera justo hasta su capacidad debe aceptarse (8 + 2 = 10).
func TestCrear_HastaCapacidadExacta(t *testing.T) {
	uc, store := newTestUseCase(t)

	colocar(t, uc, 8)
	colocar(t, uc, 2)

	assert.Equal(t, int64(10), ocupado(t, store))
}

// Superar la capacidad debe fallar con ErrUbicacionLlena nombrando la
// ubicación, y sin insertar nada.
func TestCrear_UbicacionLlena(t *testing.T) {
	uc, store := newTestUseCase(t)
	colocar(t, uc, 8)

	_, err := uc.Crear(context.Background(), dto.CrearExistenciaRequest{
		IDAlimento:  idLeche,
		IDUbicacion: idNevera,
		Cantidad:    3,
	})

	require.ErrorIs(t, err, domain.ErrUbicacionLlena)
	assert.Contains(t, err.Error(), "Nevera de la cocina")
	assert.Equal(t, int64(8), ocupado(t, store), "el rechazo no debe alterar lo ocupado")
}

func TestCrear_CantidadNoPositiva(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Crear(context.Background(), dto.CrearExistenciaRequest{
		IDAlimento:  idLeche,
		IDUbicacion: idNevera,
		Cantidad:    0,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrear_AlimentoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Crear(context.Background(), dto.CrearExistenciaRequest{
		IDAlimento:  "no-existe",
		IDUbicacion: idNevera,
		Cantidad:    1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrear_UbicacionInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Crear(context.Background(), dto.CrearExistenciaRequest{
		IDAlimento:  idLeche,
		IDUbicacion: "no-existe",
		Cantidad:    1,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consumo FIFO
// ──────────────────────────────────────────────────────────────────────────────

// El consumo descuenta siempre de la existencia con fecha de entrada más
// antigua, no de otra.
func TestConsumir_DescuentaDeLaMasAntigua(t *testing.T) {
	uc, store := newTestUseCase(t)
	antigua := &entity.Existencia{
		ID: "e-antigua", IDAlimento: idLeche, IDUbicacion: idNevera,
		Cantidad: 5, FechaEntrada: time.Now().Add(-48 * time.Hour),
	}
	reciente := &entity.Existencia{
		ID: "e-reciente", IDAlimento: idLeche, IDUbicacion: idNevera,
		Cantidad: 5, FechaEntrada: time.Now(),
	}
	require.NoError(t, store.Existencias().Create(antigua))
	require.NoError(t, store.Existencias().Create(reciente))

	out, err := uc.Consumir(context.Background(), idLeche, idNevera, 2)
	require.NoError(t, err)

	assert.Equal(t, "e-antigua", out.ID)
	assert.Equal(t, int64(3), out.Cantidad)

	intacta, err := store.Existencias().GetByID("e-reciente")
	require.NoError(t, err)
	require.NotNil(t, intacta)
	assert.Equal(t, int64(5), intacta.Cantidad, "la existencia reciente no debe tocarse")
}

// Drenar exactamente a cero elimina la fila; la respuesta refleja el estado
// previo al borrado.
func TestConsumir_DrenarACeroEliminaLaFila(t *testing.T) {
	uc, store := newTestUseCase(t)
	out := colocar(t, uc, 5)

	resp, err := uc.Consumir(context.Background(), idLeche, idNevera, 5)
	require.NoError(t, err)

	assert.Equal(t, out.ID, resp.ID)
	assert.Equal(t, int64(0), resp.Cantidad)
	assert.Equal(t, "Leche", resp.NombreAlimento)

	quedan, err := store.Existencias().GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, quedan, "la fila a cero no debe conservarse")
	assert.Equal(t, int64(0), ocupado(t, store))
}

// Si la más antigua no alcanza, la operación falla entera aunque la suma de
// todas las existencias sí alcance. No hay consumo parcial ni salto a la
// siguiente.
func TestConsumir_CantidadInsuficienteEnLaMasAntigua(t *testing.T) {
	uc, store := newTestUseCase(t)
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-antigua", IDAlimento: idLeche, IDUbicacion: idNevera,
		Cantidad: 2, FechaEntrada: time.Now().Add(-48 * time.Hour),
	}))
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-reciente", IDAlimento: idLeche, IDUbicacion: idNevera,
		Cantidad: 8, FechaEntrada: time.Now(),
	}))

	_, err := uc.Consumir(context.Background(), idLeche, idNevera, 5)

	require.ErrorIs(t, err, domain.ErrCantidadInsuficiente)
	antigua, _ := store.Existencias().GetByID("e-antigua")
	reciente, _ := store.Existencias().GetByID("e-reciente")
	require.NotNil(t, antigua)
	require.NotNil(t, reciente)
	assert.Equal(t, int64(2), antigua.Cantidad, "el fallo no debe consumir nada")
	assert.Equal(t, int64(8), reciente.Cantidad)
}

func TestConsumir_SinExistencias(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Consumir(context.Background(), idLeche, idNevera, 1)

	assert.ErrorIs(t, err, domain.ErrSinExistencias)
}

func TestConsumir_CantidadNoPositiva(t *testing.T) {
	uc, _ := newTestUseCase(t)
	colocar(t, uc, 3)

	_, err := uc.Consumir(context.Background(), idLeche, idNevera, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Traslado y sobrescritura de cantidad
// ──────────────────────────────────────────────────────────────────────────────

// El traslado no comprueba la capacidad destino: 100 unidades entran en una
// alacena de capacidad 10.
func TestMover_SinControlDeCapacidad(t *testing.T) {
	uc, store := newTestUseCase(t)
	require.NoError(t, store.Ubicaciones().Create(&entity.Ubicacion{
		ID: "u-alacena", Descripcion: "Alacena pequeña",
		TipoUbicacion: entity.UbicacionAlacena, Capacidad: 10,
	}))
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-grande", IDAlimento: idLeche, IDUbicacion: idNevera,
		Cantidad: 100, FechaEntrada: time.Now(),
	}))

	out, err := uc.Mover("e-grande", "u-alacena")
	require.NoError(t, err)

	assert.Equal(t, "u-alacena", out.IDUbicacion)
	assert.Equal(t, "Alacena pequeña", out.DescripcionUbicacion)
	assert.Equal(t, int64(100), out.Cantidad)
}

func TestMover_UbicacionDestinoInexistente(t *testing.T) {
	uc, _ := newTestUseCase(t)
	out := colocar(t, uc, 1)

	_, err := uc.Mover(out.ID, "no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Sobrescribir la cantidad no revalida la capacidad.
func TestActualizarCantidad_SinRevalidarCapacidad(t *testing.T) {
	uc, _ := newTestUseCase(t)
	out := colocar(t, uc, 4)

	actualizado, err := uc.ActualizarCantidad(out.ID, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(500), actualizado.Cantidad)
}

func TestActualizarCantidad_NegativaRechazada(t *testing.T) {
	uc, _ := newTestUseCase(t)
	out := colocar(t, uc, 4)

	_, err := uc.ActualizarCantidad(out.ID, -1)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestConsultar_NoEncontrada(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.Consultar("no-existe")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListar_FiltraPorUbicacion(t *testing.T) {
	uc, store := newTestUseCase(t)
	require.NoError(t, store.Ubicaciones().Create(&entity.Ubicacion{
		ID: "u-otra", Descripcion: "Congelador del sótano",
		TipoUbicacion: entity.UbicacionCongelador, Capacidad: 50,
	}))
	colocar(t, uc, 3)
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-otra", IDAlimento: idLeche, IDUbicacion: "u-otra",
		Cantidad: 7, FechaEntrada: time.Now(),
	}))

	out, err := uc.Listar("", idNevera, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, idNevera, out.Items[0].IDUbicacion)
	assert.Equal(t, int64(3), out.Items[0].Cantidad)
}

// Las existencias cuyo alimento caduca dentro de la ventana de dos semanas
// aparecen en el listado; las que caducan después, no.
func TestListarCaducanPorUbicacion_VentanaDeDosSemanas(t *testing.T) {
	uc, store := newTestUseCase(t)
	require.NoError(t, store.Alimentos().Create(&entity.Alimento{
		ID: "a-lejano", Nombre: "Conserva", Tipo: entity.TipoNoPerecedero,
		Estado: entity.EstadoCerrado, FechaCaducidad: time.Now().Add(60 * 24 * time.Hour),
	}))
	colocar(t, uc, 2) // la leche caduca en 5 días
	require.NoError(t, store.Existencias().Create(&entity.Existencia{
		ID: "e-conserva", IDAlimento: "a-lejano", IDUbicacion: idNevera,
		Cantidad: 1, FechaEntrada: time.Now(),
	}))

	out, err := uc.ListarCaducanPorUbicacion(20)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.Equal(t, "Leche", out[0].NombreAlimento)
	assert.Equal(t, entity.UbicacionNevera, out[0].TipoUbicacion)
}
