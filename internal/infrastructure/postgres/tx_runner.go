package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acoves/despensa-api/internal/application/existencia"
	"github.com/acoves/despensa-api/internal/domain/repository"
)

var _ existencia.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	existencias repository.ExistenciaRepository,
	alimentos repository.AlimentoRepository,
	ubicaciones repository.UbicacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	existenciaRepo := NewExistenciaRepository(tx)
	alimentoRepo := NewAlimentoRepository(tx)
	ubicacionRepo := NewUbicacionRepository(tx)

	if err := fn(existenciaRepo, alimentoRepo, ubicacionRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
