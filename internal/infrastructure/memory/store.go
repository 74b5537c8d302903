// Package memory ofrece implementaciones en memoria de los puertos de
// persistencia, pensadas para tests y desarrollo sin base de datos.
package memory

import (
	"context"
	"sync"

	"github.com/acoves/despensa-api/internal/application/existencia"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

var _ existencia.TxRunner = (*Store)(nil)

// Store contiene todos los datos en mapas protegidos por un mutex.
// Las vistas por entidad (Alimentos(), Ubicaciones(), ...) comparten el
// mismo almacenamiento, igual que las tablas de una misma base de datos.
type Store struct {
	mu          sync.RWMutex
	alimentos   map[string]entity.Alimento
	ubicaciones map[string]entity.Ubicacion
	existencias map[string]entity.Existencia
	usuarios    map[string]entity.Usuario
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		alimentos:   make(map[string]entity.Alimento),
		ubicaciones: make(map[string]entity.Ubicacion),
		existencias: make(map[string]entity.Existencia),
		usuarios:    make(map[string]entity.Usuario),
	}
}

// Alimentos devuelve la vista de alimentos del almacén.
func (s *Store) Alimentos() repository.AlimentoRepository { return &alimentoRepo{s: s} }

// Ubicaciones devuelve la vista de ubicaciones del almacén.
func (s *Store) Ubicaciones() repository.UbicacionRepository { return &ubicacionRepo{s: s} }

// Existencias devuelve la vista de existencias del almacén.
func (s *Store) Existencias() repository.ExistenciaRepository { return &existenciaRepo{s: s} }

// Usuarios devuelve la vista de usuarios del almacén.
func (s *Store) Usuarios() repository.UsuarioRepository { return &usuarioRepo{s: s} }

// Run ejecuta fn con las vistas del propio almacén. No hay aislamiento ni
// rollback: los casos de uso validan antes de mutar, así que un fallo no
// deja estado parcial.
func (s *Store) Run(_ context.Context, fn func(
	existencias repository.ExistenciaRepository,
	alimentos repository.AlimentoRepository,
	ubicaciones repository.UbicacionRepository,
) error) error {
	return fn(s.Existencias(), s.Alimentos(), s.Ubicaciones())
}

// paginar recorta una lista al rango [offset, offset+limit).
func paginar[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
