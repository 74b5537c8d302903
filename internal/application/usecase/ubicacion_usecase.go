package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

// UbicacionUseCase operaciones CRUD sobre ubicaciones y el informe de
// espacio por tipo.
type UbicacionUseCase struct {
	repo           repository.UbicacionRepository
	existenciaRepo repository.ExistenciaRepository
}

// NewUbicacionUseCase construye el caso de uso de ubicaciones.
func NewUbicacionUseCase(repo repository.UbicacionRepository, existenciaRepo repository.ExistenciaRepository) *UbicacionUseCase {
	return &UbicacionUseCase{repo: repo, existenciaRepo: existenciaRepo}
}

// Listar devuelve las ubicaciones, filtradas por tipo si se indica.
func (uc *UbicacionUseCase) Listar(tipo string, page dto.PageRequest) (*dto.UbicacionListResponse, error) {
	page.DefaultPage()
	ubicaciones, err := uc.repo.List(tipo, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UbicacionResponse, 0, len(ubicaciones))
	for _, u := range ubicaciones {
		items = append(items, *toUbicacionResponse(u))
	}
	return &dto.UbicacionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Obtener devuelve una ubicación por su id.
func (uc *UbicacionUseCase) Obtener(id string) (*dto.UbicacionResponse, error) {
	ubicacion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ubicacion == nil {
		return nil, fmt.Errorf("%w: ubicación con id %s", domain.ErrNotFound, id)
	}
	return toUbicacionResponse(ubicacion), nil
}

// Espacio calcula el espacio total, ocupado y disponible para un tipo de
// ubicación. Un tipo sin coincidencias devuelve totales a cero, sin error.
func (uc *UbicacionUseCase) Espacio(tipo string) (*dto.UbicacionEspacioResponse, error) {
	total, err := uc.repo.SumCapacidadByTipo(tipo)
	if err != nil {
		return nil, err
	}
	ocupado, err := uc.existenciaRepo.SumCantidadByTipoUbicacion(tipo)
	if err != nil {
		return nil, err
	}
	return &dto.UbicacionEspacioResponse{
		TipoUbicacion:     tipo,
		EspacioTotal:      total,
		EspacioOcupado:    ocupado,
		EspacioDisponible: total - ocupado,
	}, nil
}

// Crear registra una ubicación nueva.
func (uc *UbicacionUseCase) Crear(in dto.CrearUbicacionRequest) (*dto.UbicacionResponse, error) {
	tipo := entity.NormalizarTipoUbicacion(in.TipoUbicacion)
	if tipo == "" {
		return nil, fmt.Errorf("%w: tipo de ubicación %q", domain.ErrInvalidInput, in.TipoUbicacion)
	}
	if in.Capacidad <= 0 {
		return nil, fmt.Errorf("%w: la capacidad debe ser un valor positivo", domain.ErrInvalidInput)
	}
	ubicacion := &entity.Ubicacion{
		ID:            uuid.New().String(),
		Descripcion:   in.Descripcion,
		TipoUbicacion: tipo,
		Capacidad:     in.Capacidad,
	}
	if err := uc.repo.Create(ubicacion); err != nil {
		return nil, err
	}
	return toUbicacionResponse(ubicacion), nil
}

// Actualizar modifica una ubicación; los campos nil no cambian. Reducir la
// capacidad no revalida las existencias ya almacenadas.
func (uc *UbicacionUseCase) Actualizar(id string, in dto.ModificarUbicacionRequest) (*dto.UbicacionResponse, error) {
	ubicacion, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ubicacion == nil {
		return nil, fmt.Errorf("%w: ubicación con id %s", domain.ErrNotFound, id)
	}
	if in.Descripcion != nil && *in.Descripcion != "" {
		ubicacion.Descripcion = *in.Descripcion
	}
	if in.TipoUbicacion != nil && *in.TipoUbicacion != "" {
		tipo := entity.NormalizarTipoUbicacion(*in.TipoUbicacion)
		if tipo == "" {
			return nil, fmt.Errorf("%w: tipo de ubicación %q", domain.ErrInvalidInput, *in.TipoUbicacion)
		}
		ubicacion.TipoUbicacion = tipo
	}
	if in.Capacidad != nil {
		if *in.Capacidad <= 0 {
			return nil, fmt.Errorf("%w: la capacidad debe ser un valor positivo", domain.ErrInvalidInput)
		}
		ubicacion.Capacidad = *in.Capacidad
	}
	if err := uc.repo.Update(ubicacion); err != nil {
		return nil, err
	}
	return toUbicacionResponse(ubicacion), nil
}

// Eliminar borra una ubicación; sus existencias se eliminan en cascada.
func (uc *UbicacionUseCase) Eliminar(id string) error {
	ubicacion, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if ubicacion == nil {
		return fmt.Errorf("%w: ubicación con id %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toUbicacionResponse(u *entity.Ubicacion) *dto.UbicacionResponse {
	return &dto.UbicacionResponse{
		ID:            u.ID,
		Descripcion:   u.Descripcion,
		TipoUbicacion: u.TipoUbicacion,
		Capacidad:     u.Capacidad,
	}
}
