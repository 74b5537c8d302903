package repository

import (
	"time"

	"github.com/acoves/despensa-api/internal/domain/entity"
)

// ExistenciaRepository define el puerto de persistencia para Existencia.
// Se usa tanto fuera como dentro de transacciones (ver TxRunner en la capa
// de aplicación).
type ExistenciaRepository interface {
	Create(existencia *entity.Existencia) error
	GetByID(id string) (*entity.Existencia, error)
	Update(existencia *entity.Existencia) error
	Delete(id string) error
	// List filtra por alimento, por ubicación, por ambos o por ninguno
	// (parámetros vacíos = sin filtro). Devuelve el modelo de lectura con los
	// campos denormalizados del alimento y la ubicación.
	List(idAlimento, idUbicacion string, limit, offset int) ([]*entity.ExistenciaDetalle, error)
	// ListCaducanEntre lista existencias cuyo alimento caduca en [desde, hasta],
	// ordenadas por tipo de ubicación ascendente.
	ListCaducanEntre(desde, hasta time.Time, limit int) ([]*entity.ExistenciaDetalle, error)
	// FindOldest devuelve la existencia con fecha de entrada más antigua para
	// el par (alimento, ubicación), o nil si no hay ninguna.
	FindOldest(idAlimento, idUbicacion string) (*entity.Existencia, error)
	// SumCantidadByUbicacion suma las cantidades de todas las existencias de
	// una ubicación (espacio ocupado). Sin existencias devuelve 0.
	SumCantidadByUbicacion(idUbicacion string) (int64, error)
	// SumCantidadByTipoUbicacion suma las cantidades de las existencias cuyas
	// ubicaciones son del tipo dado (igualdad sin distinguir mayúsculas).
	SumCantidadByTipoUbicacion(tipo string) (int64, error)
}
