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

var _ repository.AlimentoRepository = (*AlimentoRepo)(nil)

// AlimentoRepo implementación del puerto AlimentoRepository sobre PostgreSQL
// (usable con pool o tx).
type AlimentoRepo struct {
	q Querier
}

// NewAlimentoRepository construye el adaptador de persistencia para
// alimentos. Pasar pool o tx (Querier).
func NewAlimentoRepository(q Querier) *AlimentoRepo {
	return &AlimentoRepo{q: q}
}

// Create persiste un alimento nuevo.
func (r *AlimentoRepo) Create(alimento *entity.Alimento) error {
	query := `
		INSERT INTO alimentos (id, nombre, tipo, estado, fecha_caducidad)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		alimento.ID, alimento.Nombre, alimento.Tipo, alimento.Estado, alimento.FechaCaducidad,
	)
	if err != nil {
		return fmt.Errorf("insert alimento: %w", err)
	}
	return nil
}

// GetByID obtiene un alimento por ID.
func (r *AlimentoRepo) GetByID(id string) (*entity.Alimento, error) {
	query := `
		SELECT id, nombre, tipo, estado, fecha_caducidad
		FROM alimentos WHERE id = $1`
	var a entity.Alimento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Nombre, &a.Tipo, &a.Estado, &a.FechaCaducidad,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alimento: %w", err)
	}
	return &a, nil
}

// Update actualiza un alimento existente.
func (r *AlimentoRepo) Update(alimento *entity.Alimento) error {
	query := `
		UPDATE alimentos SET nombre = $2, tipo = $3, estado = $4, fecha_caducidad = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		alimento.ID, alimento.Nombre, alimento.Tipo, alimento.Estado, alimento.FechaCaducidad,
	)
	if err != nil {
		return fmt.Errorf("update alimento: %w", err)
	}
	return nil
}

// List lista alimentos con paginación, filtrando por nombre (subcadena, sin
// distinguir mayúsculas) si se indica.
func (r *AlimentoRepo) List(nombre string, limit, offset int) ([]*entity.Alimento, error) {
	query := `
		SELECT id, nombre, tipo, estado, fecha_caducidad
		FROM alimentos
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		ORDER BY nombre ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, nombre, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alimentos: %w", err)
	}
	defer rows.Close()
	return scanAlimentos(rows)
}

// ListCaducanEntre lista alimentos cuya fecha de caducidad cae en el rango,
// ordenados por fecha de caducidad ascendente.
func (r *AlimentoRepo) ListCaducanEntre(desde, hasta time.Time, limit, offset int) ([]*entity.Alimento, error) {
	query := `
		SELECT id, nombre, tipo, estado, fecha_caducidad
		FROM alimentos
		WHERE fecha_caducidad BETWEEN $1 AND $2
		ORDER BY fecha_caducidad ASC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, desde, hasta, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list alimentos caducan: %w", err)
	}
	defer rows.Close()
	return scanAlimentos(rows)
}

// Delete elimina un alimento; sus existencias caen en cascada (FK).
func (r *AlimentoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM alimentos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete alimento: %w", err)
	}
	return nil
}

func scanAlimentos(rows pgx.Rows) ([]*entity.Alimento, error) {
	var list []*entity.Alimento
	for rows.Next() {
		var a entity.Alimento
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Tipo, &a.Estado, &a.FechaCaducidad); err != nil {
			return nil, fmt.Errorf("scan alimento: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
