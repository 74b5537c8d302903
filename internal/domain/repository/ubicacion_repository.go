package repository

import "github.com/acoves/despensa-api/internal/domain/entity"

// UbicacionRepository define el puerto de persistencia para Ubicacion (DIP).
type UbicacionRepository interface {
	Create(ubicacion *entity.Ubicacion) error
	GetByID(id string) (*entity.Ubicacion, error)
	Update(ubicacion *entity.Ubicacion) error
	// List filtra por tipo de ubicación (subcadena, sin distinguir mayúsculas)
	// si tipo no está vacío.
	List(tipo string, limit, offset int) ([]*entity.Ubicacion, error)
	// SumCapacidadByTipo suma la capacidad de todas las ubicaciones cuyo tipo
	// contiene la cadena dada (sin distinguir mayúsculas). Sin coincidencias
	// devuelve 0.
	SumCapacidadByTipo(tipo string) (int64, error)
	Delete(id string) error
}
