package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// Ensure TxRunner implements cellar.TxRunner.
var _ cellar.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Es la garantía de atomicidad del motor: inicio de lote + apertura,
// finalización + merma y la transferencia completa confirman juntos o nada.
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
	tankRepo repository.TankRepository,
	batchRepo repository.BatchRepository,
	txnRepo repository.TransactionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tankRepo := NewTankRepository(tx)
	batchRepo := NewBatchRepository(tx)
	txnRepo := NewTransactionRepository(tx)

	if err := fn(tankRepo, batchRepo, txnRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
