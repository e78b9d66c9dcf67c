package cellar

import (
	"context"

	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que toda secuencia multi-paso del
// motor (inicio de lote + transacción de apertura, finalización + merma,
// transferencia completa) sea todo-o-nada: ningún paso se confirma por
// separado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		tankRepo repository.TankRepository,
		batchRepo repository.BatchRepository,
		txnRepo repository.TransactionRepository,
	) error) error
}
