package existencia

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

// Ventana del listado de existencias que caducan (desde hoy).
const ventanaCaducidad = 14 * 24 * time.Hour

// UseCase gestiona las existencias: colocación con control de capacidad,
// consumo FIFO (la existencia más antigua primero), traslado y consultas.
type UseCase struct {
	existenciaRepo repository.ExistenciaRepository
	alimentoRepo   repository.AlimentoRepository
	ubicacionRepo  repository.UbicacionRepository
	txRunner       TxRunner
}

// NewUseCase construye el caso de uso de existencias.
func NewUseCase(
	existenciaRepo repository.ExistenciaRepository,
	alimentoRepo repository.AlimentoRepository,
	ubicacionRepo repository.UbicacionRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{
		existenciaRepo: existenciaRepo,
		alimentoRepo:   alimentoRepo,
		ubicacionRepo:  ubicacionRepo,
		txRunner:       txRunner,
	}
}

// Listar devuelve las existencias filtradas por alimento, por ubicación, por
// ambos o por ninguno (parámetros vacíos = sin filtro).
func (uc *UseCase) Listar(idAlimento, idUbicacion string, page dto.PageRequest) (*dto.ExistenciaListResponse, error) {
	page.DefaultPage()
	detalles, err := uc.existenciaRepo.List(idAlimento, idUbicacion, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExistenciaResponse, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, dto.ExistenciaResponse{
			ID:                   d.ID,
			IDAlimento:           d.IDAlimento,
			NombreAlimento:       d.NombreAlimento,
			IDUbicacion:          d.IDUbicacion,
			DescripcionUbicacion: d.DescripcionUbicacion,
			Cantidad:             d.Cantidad,
			FechaEntrada:         d.FechaEntrada,
		})
	}
	return &dto.ExistenciaListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListarCaducanPorUbicacion lista las existencias cuyo alimento caduca entre
// hoy y dos semanas, ordenadas por tipo de ubicación ascendente.
func (uc *UseCase) ListarCaducanPorUbicacion(size int) ([]dto.ExistenciaDetallesResponse, error) {
	if size <= 0 {
		size = 20
	}
	hoy := time.Now()
	detalles, err := uc.existenciaRepo.ListCaducanEntre(hoy, hoy.Add(ventanaCaducidad), size)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExistenciaDetallesResponse, 0, len(detalles))
	for _, d := range detalles {
		items = append(items, dto.ExistenciaDetallesResponse{
			ID:                   d.ID,
			IDAlimento:           d.IDAlimento,
			NombreAlimento:       d.NombreAlimento,
			FechaCaducidad:       d.FechaCaducidad,
			IDUbicacion:          d.IDUbicacion,
			DescripcionUbicacion: d.DescripcionUbicacion,
			TipoUbicacion:        d.TipoUbicacion,
			Cantidad:             d.Cantidad,
			FechaEntrada:         d.FechaEntrada,
		})
	}
	return items, nil
}

// Consultar devuelve una existencia por su id.
func (uc *UseCase) Consultar(id string) (*dto.ExistenciaResponse, error) {
	e, err := uc.existenciaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: existencia con id %s", domain.ErrNotFound, id)
	}
	return uc.toResponse(uc.alimentoRepo, uc.ubicacionRepo, e)
}

// Crear coloca una cantidad de un alimento en una ubicación, comprobando que
// el espacio ocupado más lo solicitado no supere la capacidad. Todo el ciclo
// leer-validar-insertar ocurre en una transacción, pero la comprobación no
// bloquea filas: dos peticiones concurrentes sobre una ubicación casi llena
// pueden pasar la validación a la vez.
func (uc *UseCase) Crear(ctx context.Context, in dto.CrearExistenciaRequest) (*dto.ExistenciaResponse, error) {
	if in.Cantidad <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	var out *dto.ExistenciaResponse
	err := uc.txRunner.Run(ctx, func(
		existencias repository.ExistenciaRepository,
		alimentos repository.AlimentoRepository,
		ubicaciones repository.UbicacionRepository,
	) error {
		alimento, err := alimentos.GetByID(in.IDAlimento)
		if err != nil {
			return err
		}
		if alimento == nil {
			return fmt.Errorf("%w: alimento con id %s", domain.ErrNotFound, in.IDAlimento)
		}
		ubicacion, err := ubicaciones.GetByID(in.IDUbicacion)
		if err != nil {
			return err
		}
		if ubicacion == nil {
			return fmt.Errorf("%w: ubicación con id %s", domain.ErrNotFound, in.IDUbicacion)
		}

		ocupado, err := existencias.SumCantidadByUbicacion(ubicacion.ID)
		if err != nil {
			return err
		}
		if ocupado+in.Cantidad > ubicacion.Capacidad {
			return fmt.Errorf("%w: la ubicación %q está llena", domain.ErrUbicacionLlena, ubicacion.Descripcion)
		}

		e := &entity.Existencia{
			ID:           uuid.New().String(),
			IDAlimento:   alimento.ID,
			IDUbicacion:  ubicacion.ID,
			Cantidad:     in.Cantidad,
			FechaEntrada: time.Now(),
		}
		if err := existencias.Create(e); err != nil {
			return err
		}
		out = buildResponse(e, alimento.Nombre, ubicacion.Descripcion)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ActualizarCantidad sobrescribe la cantidad de una existencia sin revalidar
// la capacidad de su ubicación.
func (uc *UseCase) ActualizarCantidad(id string, cantidad int64) (*dto.ExistenciaResponse, error) {
	if cantidad < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	e, err := uc.existenciaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: existencia con id %s", domain.ErrNotFound, id)
	}
	e.Cantidad = cantidad
	if err := uc.existenciaRepo.Update(e); err != nil {
		return nil, err
	}
	return uc.toResponse(uc.alimentoRepo, uc.ubicacionRepo, e)
}

// Mover traslada una existencia a otra ubicación. No se comprueba la
// capacidad de la ubicación destino.
func (uc *UseCase) Mover(id, idUbicacion string) (*dto.ExistenciaResponse, error) {
	e, err := uc.existenciaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, fmt.Errorf("%w: existencia con id %s", domain.ErrNotFound, id)
	}
	ubicacion, err := uc.ubicacionRepo.GetByID(idUbicacion)
	if err != nil {
		return nil, err
	}
	if ubicacion == nil {
		return nil, fmt.Errorf("%w: ubicación con id %s", domain.ErrNotFound, idUbicacion)
	}
	e.IDUbicacion = ubicacion.ID
	if err := uc.existenciaRepo.Update(e); err != nil {
		return nil, err
	}
	return uc.toResponse(uc.alimentoRepo, uc.ubicacionRepo, e)
}

// Consumir retira una cantidad de un alimento en una ubicación aplicando
// FIFO: siempre opera sobre la existencia con fecha de entrada más antigua y
// solo sobre esa. Si la existencia más antigua no alcanza, la operación falla
// sin consumir nada (no hay consumo parcial ni salto a la siguiente). Si la
// cantidad queda exactamente a cero la fila se elimina y la respuesta refleja
// el estado previo al borrado.
func (uc *UseCase) Consumir(ctx context.Context, idAlimento, idUbicacion string, cantidad int64) (*dto.ExistenciaResponse, error) {
	if cantidad <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	var out *dto.ExistenciaResponse
	err := uc.txRunner.Run(ctx, func(
		existencias repository.ExistenciaRepository,
		alimentos repository.AlimentoRepository,
		ubicaciones repository.UbicacionRepository,
	) error {
		e, err := existencias.FindOldest(idAlimento, idUbicacion)
		if err != nil {
			return err
		}
		if e == nil {
			return fmt.Errorf("%w: alimento %s en la ubicación %s", domain.ErrSinExistencias, idAlimento, idUbicacion)
		}
		if e.Cantidad < cantidad {
			return domain.ErrCantidadInsuficiente
		}

		e.Cantidad -= cantidad
		if e.Cantidad == 0 {
			if err := existencias.Delete(e.ID); err != nil {
				return err
			}
		} else {
			if err := existencias.Update(e); err != nil {
				return err
			}
		}

		resp, err := uc.toResponse(alimentos, ubicaciones, e)
		if err != nil {
			return err
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Eliminar borra una existencia por su id.
func (uc *UseCase) Eliminar(id string) error {
	e, err := uc.existenciaRepo.GetByID(id)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("%w: existencia con id %s", domain.ErrNotFound, id)
	}
	return uc.existenciaRepo.Delete(id)
}

// toResponse resuelve el nombre del alimento y la descripción de la ubicación
// referenciados y construye el DTO de salida.
func (uc *UseCase) toResponse(
	alimentos repository.AlimentoRepository,
	ubicaciones repository.UbicacionRepository,
	e *entity.Existencia,
) (*dto.ExistenciaResponse, error) {
	alimento, err := alimentos.GetByID(e.IDAlimento)
	if err != nil {
		return nil, err
	}
	ubicacion, err := ubicaciones.GetByID(e.IDUbicacion)
	if err != nil {
		return nil, err
	}
	nombre, descripcion := "", ""
	if alimento != nil {
		nombre = alimento.Nombre
	}
	if ubicacion != nil {
		descripcion = ubicacion.Descripcion
	}
	return buildResponse(e, nombre, descripcion), nil
}

func buildResponse(e *entity.Existencia, nombreAlimento, descripcionUbicacion string) *dto.ExistenciaResponse {
	return &dto.ExistenciaResponse{
		ID:                   e.ID,
		IDAlimento:           e.IDAlimento,
		NombreAlimento:       nombreAlimento,
		IDUbicacion:          e.IDUbicacion,
		DescripcionUbicacion: descripcionUbicacion,
		Cantidad:             e.Cantidad,
		FechaEntrada:         e.FechaEntrada,
	}
}
