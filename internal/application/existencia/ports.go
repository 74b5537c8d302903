package existencia

import (
	"context"

	"github.com/acoves/despensa-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma
// transacción: commit si fn devuelve nil, rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		existencias repository.ExistenciaRepository,
		alimentos repository.AlimentoRepository,
		ubicaciones repository.UbicacionRepository,
	) error) error
}
