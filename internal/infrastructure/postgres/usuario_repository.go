package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste un usuario nuevo. Devuelve domain.ErrDuplicate si el email
// ya está registrado (constraint único).
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nombre, email, password_hash, rol)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombre, usuario.Email, usuario.PasswordHash, usuario.Rol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el email %s ya está en uso", domain.ErrDuplicate, usuario.Email)
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`SELECT id, nombre, email, password_hash, rol FROM usuarios WHERE id = $1`, id)
}

// GetByEmail obtiene un usuario por email.
func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT id, nombre, email, password_hash, rol FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}

// Update actualiza un usuario existente.
func (r *UsuarioRepo) Update(usuario *entity.Usuario) error {
	query := `
		UPDATE usuarios SET nombre = $2, email = $3, password_hash = $4, rol = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		usuario.ID, usuario.Nombre, usuario.Email, usuario.PasswordHash, usuario.Rol,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: el email %s ya está en uso", domain.ErrDuplicate, usuario.Email)
		}
		return fmt.Errorf("update usuario: %w", err)
	}
	return nil
}

// List lista usuarios con paginación, filtrando por nombre (subcadena, sin
// distinguir mayúsculas) si se indica.
func (r *UsuarioRepo) List(nombre string, limit, offset int) ([]*entity.Usuario, error) {
	query := `
		SELECT id, nombre, email, password_hash, rol
		FROM usuarios
		WHERE ($1 = '' OR nombre ILIKE '%' || $1 || '%')
		ORDER BY nombre ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, nombre, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.Rol); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina un usuario por ID.
func (r *UsuarioRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete usuario: %w", err)
	}
	return nil
}
