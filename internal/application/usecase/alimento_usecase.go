package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/acoves/despensa-api/internal/application/dto"
	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

// Ventana del listado de alimentos que caducan (desde hoy).
const ventanaCaducidadAlimentos = 7 * 24 * time.Hour

// AlimentoUseCase operaciones CRUD sobre alimentos.
type AlimentoUseCase struct {
	repo repository.AlimentoRepository
}

// NewAlimentoUseCase construye el caso de uso de alimentos.
func NewAlimentoUseCase(repo repository.AlimentoRepository) *AlimentoUseCase {
	return &AlimentoUseCase{repo: repo}
}

// Listar devuelve los alimentos, filtrados por nombre si se indica.
func (uc *AlimentoUseCase) Listar(nombre string, page dto.PageRequest) (*dto.AlimentoListResponse, error) {
	page.DefaultPage()
	alimentos, err := uc.repo.List(nombre, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toAlimentoList(alimentos, page), nil
}

// ListarCaducan devuelve los alimentos que caducan entre hoy y una semana.
func (uc *AlimentoUseCase) ListarCaducan(page dto.PageRequest) (*dto.AlimentoListResponse, error) {
	page.DefaultPage()
	hoy := time.Now()
	alimentos, err := uc.repo.ListCaducanEntre(hoy, hoy.Add(ventanaCaducidadAlimentos), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toAlimentoList(alimentos, page), nil
}

// Obtener devuelve un alimento por su id.
func (uc *AlimentoUseCase) Obtener(id string) (*dto.AlimentoResponse, error) {
	alimento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alimento == nil {
		return nil, fmt.Errorf("%w: alimento con id %s", domain.ErrNotFound, id)
	}
	return toAlimentoResponse(alimento), nil
}

// Crear registra un alimento nuevo. El estado inicial es CERRADO y la fecha
// de caducidad debe ser estrictamente futura.
func (uc *AlimentoUseCase) Crear(in dto.CrearAlimentoRequest) (*dto.AlimentoResponse, error) {
	tipo := entity.NormalizarTipoAlimento(in.Tipo)
	if tipo == "" {
		return nil, fmt.Errorf("%w: tipo de alimento %q", domain.ErrInvalidInput, in.Tipo)
	}
	if !in.FechaCaducidad.After(time.Now()) {
		return nil, fmt.Errorf("%w: la fecha de caducidad debe ser futura", domain.ErrInvalidInput)
	}
	alimento := &entity.Alimento{
		ID:             uuid.New().String(),
		Nombre:         in.Nombre,
		Tipo:           tipo,
		Estado:         entity.EstadoCerrado,
		FechaCaducidad: in.FechaCaducidad,
	}
	if err := uc.repo.Create(alimento); err != nil {
		return nil, err
	}
	return toAlimentoResponse(alimento), nil
}

// Actualizar modifica un alimento; los campos nil no cambian.
func (uc *AlimentoUseCase) Actualizar(id string, in dto.ModificarAlimentoRequest) (*dto.AlimentoResponse, error) {
	alimento, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if alimento == nil {
		return nil, fmt.Errorf("%w: alimento con id %s", domain.ErrNotFound, id)
	}
	if in.Nombre != nil && *in.Nombre != "" {
		alimento.Nombre = *in.Nombre
	}
	if in.Tipo != nil && *in.Tipo != "" {
		tipo := entity.NormalizarTipoAlimento(*in.Tipo)
		if tipo == "" {
			return nil, fmt.Errorf("%w: tipo de alimento %q", domain.ErrInvalidInput, *in.Tipo)
		}
		alimento.Tipo = tipo
	}
	if in.Estado != nil && *in.Estado != "" {
		estado := entity.NormalizarEstadoAlimento(*in.Estado)
		if estado == "" {
			return nil, fmt.Errorf("%w: estado de alimento %q", domain.ErrInvalidInput, *in.Estado)
		}
		alimento.Estado = estado
	}
	if in.FechaCaducidad != nil {
		alimento.FechaCaducidad = *in.FechaCaducidad
	}
	if err := uc.repo.Update(alimento); err != nil {
		return nil, err
	}
	return toAlimentoResponse(alimento), nil
}

// Eliminar borra un alimento; sus existencias se eliminan en cascada.
func (uc *AlimentoUseCase) Eliminar(id string) error {
	alimento, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if alimento == nil {
		return fmt.Errorf("%w: alimento con id %s", domain.ErrNotFound, id)
	}
	return uc.repo.Delete(id)
}

func toAlimentoResponse(a *entity.Alimento) *dto.AlimentoResponse {
	return &dto.AlimentoResponse{
		ID:             a.ID,
		Nombre:         a.Nombre,
		Tipo:           a.Tipo,
		Estado:         a.Estado,
		FechaCaducidad: a.FechaCaducidad,
	}
}

func toAlimentoList(alimentos []*entity.Alimento, page dto.PageRequest) *dto.AlimentoListResponse {
	items := make([]dto.AlimentoResponse, 0, len(alimentos))
	for _, a := range alimentos {
		items = append(items, *toAlimentoResponse(a))
	}
	return &dto.AlimentoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}
