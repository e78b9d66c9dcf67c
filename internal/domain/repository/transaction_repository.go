package repository

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// TransactionRepository define el puerto para el libro de transacciones.
// Solo inserciones y lecturas: las transacciones nunca se modifican ni borran.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	// ListByBatch transacciones de un lote, más recientes primero.
	ListByBatch(batchID string) ([]*entity.Transaction, error)
	// ListByBatchAndType filtra además por tipo de transacción.
	ListByBatchAndType(batchID, typeID string) ([]*entity.Transaction, error)
}
