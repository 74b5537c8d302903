package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

var _ repository.UbicacionRepository = (*UbicacionRepo)(nil)

// UbicacionRepo implementación del puerto UbicacionRepository sobre
// PostgreSQL (usable con pool o tx).
type UbicacionRepo struct {
	q Querier
}

// NewUbicacionRepository construye el adaptador de persistencia para
// ubicaciones. Pasar pool o tx (Querier).
func NewUbicacionRepository(q Querier) *UbicacionRepo {
	return &UbicacionRepo{q: q}
}

// Create persiste una ubicación nueva.
func (r *UbicacionRepo) Create(ubicacion *entity.Ubicacion) error {
	query := `
		INSERT INTO ubicaciones (id, descripcion, tipo_ubicacion, capacidad)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		ubicacion.ID, ubicacion.Descripcion, ubicacion.TipoUbicacion, ubicacion.Capacidad,
	)
	if err != nil {
		return fmt.Errorf("insert ubicacion: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID.
func (r *UbicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	query := `
		SELECT id, descripcion, tipo_ubicacion, capacidad
		FROM ubicaciones WHERE id = $1`
	var u entity.Ubicacion
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Descripcion, &u.TipoUbicacion, &u.Capacidad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ubicacion: %w", err)
	}
	return &u, nil
}

// Update actualiza una ubicación existente.
func (r *UbicacionRepo) Update(ubicacion *entity.Ubicacion) error {
	query := `
		UPDATE ubicaciones SET descripcion = $2, tipo_ubicacion = $3, capacidad = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		ubicacion.ID, ubicacion.Descripcion, ubicacion.TipoUbicacion, ubicacion.Capacidad,
	)
	if err != nil {
		return fmt.Errorf("update ubicacion: %w", err)
	}
	return nil
}

// List lista ubicaciones con paginación, filtrando por tipo (subcadena, sin
// distinguir mayúsculas) si se indica.
func (r *UbicacionRepo) List(tipo string, limit, offset int) ([]*entity.Ubicacion, error) {
	query := `
		SELECT id, descripcion, tipo_ubicacion, capacidad
		FROM ubicaciones
		WHERE ($1 = '' OR tipo_ubicacion ILIKE '%' || $1 || '%')
		ORDER BY descripcion ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, tipo, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list ubicaciones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Ubicacion
	for rows.Next() {
		var u entity.Ubicacion
		if err := rows.Scan(&u.ID, &u.Descripcion, &u.TipoUbicacion, &u.Capacidad); err != nil {
			return nil, fmt.Errorf("scan ubicacion: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SumCapacidadByTipo suma la capacidad de las ubicaciones cuyo tipo contiene
// la cadena dada (sin distinguir mayúsculas).
func (r *UbicacionRepo) SumCapacidadByTipo(tipo string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(capacidad), 0)
		FROM ubicaciones WHERE tipo_ubicacion ILIKE '%' || $1 || '%'`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, tipo).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum capacidad: %w", err)
	}
	return total, nil
}

// Delete elimina una ubicación; sus existencias caen en cascada (FK).
func (r *UbicacionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM ubicaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete ubicacion: %w", err)
	}
	return nil
}
