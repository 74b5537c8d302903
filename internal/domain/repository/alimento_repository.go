package repository

import (
	"time"

	"github.com/acoves/despensa-api/internal/domain/entity"
)

// AlimentoRepository define el puerto de persistencia para Alimento (DIP).
// Los métodos de consulta devuelven nil (sin error) cuando no hay resultado.
type AlimentoRepository interface {
	Create(alimento *entity.Alimento) error
	GetByID(id string) (*entity.Alimento, error)
	Update(alimento *entity.Alimento) error
	// List filtra por nombre (subcadena, sin distinguir mayúsculas) si nombre
	// no está vacío.
	List(nombre string, limit, offset int) ([]*entity.Alimento, error)
	// ListCaducanEntre lista alimentos cuya fecha de caducidad cae en
	// [desde, hasta], ordenados por fecha de caducidad ascendente.
	ListCaducanEntre(desde, hasta time.Time, limit, offset int) ([]*entity.Alimento, error)
	Delete(id string) error
}
