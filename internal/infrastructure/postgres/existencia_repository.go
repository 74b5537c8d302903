package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

var _ repository.ExistenciaRepository = (*ExistenciaRepo)(nil)

// ExistenciaRepo implementación del puerto ExistenciaRepository sobre
// PostgreSQL (usable con pool o tx).
type ExistenciaRepo struct {
	q Querier
}

// NewExistenciaRepository construye el adaptador de persistencia para
// existencias. Pasar pool o tx (Querier).
func NewExistenciaRepository(q Querier) *ExistenciaRepo {
	return &ExistenciaRepo{q: q}
}

// Create persiste una existencia nueva.
func (r *ExistenciaRepo) Create(existencia *entity.Existencia) error {
	query := `
		INSERT INTO existencias (id, id_alimento, id_ubicacion, cantidad, fecha_entrada)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		existencia.ID, existencia.IDAlimento, existencia.IDUbicacion,
		existencia.Cantidad, existencia.FechaEntrada,
	)
	if err != nil {
		return fmt.Errorf("insert existencia: %w", err)
	}
	return nil
}

// GetByID obtiene una existencia por ID.
func (r *ExistenciaRepo) GetByID(id string) (*entity.Existencia, error) {
	query := `
		SELECT id, id_alimento, id_ubicacion, cantidad, fecha_entrada
		FROM existencias WHERE id = $1`
	var e entity.Existencia
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.IDAlimento, &e.IDUbicacion, &e.Cantidad, &e.FechaEntrada,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get existencia: %w", err)
	}
	return &e, nil
}

// Update actualiza una existencia (cantidad y ubicación).
func (r *ExistenciaRepo) Update(existencia *entity.Existencia) error {
	query := `
		UPDATE existencias SET id_ubicacion = $2, cantidad = $3
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		existencia.ID, existencia.IDUbicacion, existencia.Cantidad,
	)
	if err != nil {
		return fmt.Errorf("update existencia: %w", err)
	}
	return nil
}

// Delete elimina una existencia por ID.
func (r *ExistenciaRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM existencias WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete existencia: %w", err)
	}
	return nil
}

// List lista existencias con los campos del alimento y la ubicación
// denormalizados, filtrando por alimento y/o ubicación si se indican.
func (r *ExistenciaRepo) List(idAlimento, idUbicacion string, limit, offset int) ([]*entity.ExistenciaDetalle, error) {
	query := detalleSelect + `
		WHERE ($1 = '' OR e.id_alimento = $1)
		  AND ($2 = '' OR e.id_ubicacion = $2)
		ORDER BY e.fecha_entrada ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, idAlimento, idUbicacion, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list existencias: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// ListCaducanEntre lista existencias cuyo alimento caduca en el rango,
// ordenadas por tipo de ubicación ascendente.
func (r *ExistenciaRepo) ListCaducanEntre(desde, hasta time.Time, limit int) ([]*entity.ExistenciaDetalle, error) {
	query := detalleSelect + `
		WHERE a.fecha_caducidad BETWEEN $1 AND $2
		ORDER BY u.tipo_ubicacion ASC LIMIT $3`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, limit)
	if err != nil {
		return nil, fmt.Errorf("list existencias caducan: %w", err)
	}
	defer rows.Close()
	return scanDetalles(rows)
}

// FindOldest devuelve la existencia con fecha de entrada más antigua para el
// par (alimento, ubicación), o nil si no hay ninguna.
func (r *ExistenciaRepo) FindOldest(idAlimento, idUbicacion string) (*entity.Existencia, error) {
	query := `
		SELECT id, id_alimento, id_ubicacion, cantidad, fecha_entrada
		FROM existencias
		WHERE id_alimento = $1 AND id_ubicacion = $2
		ORDER BY fecha_entrada ASC LIMIT 1`
	var e entity.Existencia
	err := r.q.QueryRow(context.Background(), query, idAlimento, idUbicacion).Scan(
		&e.ID, &e.IDAlimento, &e.IDUbicacion, &e.Cantidad, &e.FechaEntrada,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find oldest existencia: %w", err)
	}
	return &e, nil
}

// SumCantidadByUbicacion suma las cantidades almacenadas en una ubicación.
func (r *ExistenciaRepo) SumCantidadByUbicacion(idUbicacion string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(cantidad), 0)
		FROM existencias WHERE id_ubicacion = $1`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, idUbicacion).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum cantidad por ubicacion: %w", err)
	}
	return total, nil
}

// SumCantidadByTipoUbicacion suma las cantidades de las existencias cuyas
// ubicaciones son del tipo dado (igualdad sin distinguir mayúsculas).
func (r *ExistenciaRepo) SumCantidadByTipoUbicacion(tipo string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(e.cantidad), 0)
		FROM existencias e
		JOIN ubicaciones u ON u.id = e.id_ubicacion
		WHERE LOWER(u.tipo_ubicacion) = LOWER($1)`
	var total int64
	if err := r.q.QueryRow(context.Background(), query, tipo).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum cantidad por tipo de ubicacion: %w", err)
	}
	return total, nil
}

const detalleSelect = `
		SELECT e.id, e.id_alimento, e.id_ubicacion, e.cantidad, e.fecha_entrada,
		       a.nombre, a.fecha_caducidad, u.descripcion, u.tipo_ubicacion
		FROM existencias e
		JOIN alimentos a ON a.id = e.id_alimento
		JOIN ubicaciones u ON u.id = e.id_ubicacion`

func scanDetalles(rows pgx.Rows) ([]*entity.ExistenciaDetalle, error) {
	var list []*entity.ExistenciaDetalle
	for rows.Next() {
		var d entity.ExistenciaDetalle
		if err := rows.Scan(
			&d.ID, &d.IDAlimento, &d.IDUbicacion, &d.Cantidad, &d.FechaEntrada,
			&d.NombreAlimento, &d.FechaCaducidad, &d.DescripcionUbicacion, &d.TipoUbicacion,
		); err != nil {
			return nil, fmt.Errorf("scan existencia: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
