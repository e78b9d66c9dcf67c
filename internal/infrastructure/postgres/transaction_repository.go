package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, batch_id, type_id, quantity, unit_id, date, user_id, notes, related_tank_id, created_at`

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL.
// Solo INSERT y SELECT: el libro es append-only, sin UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción del libro.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	userID := (*string)(nil)
	if txn.UserID != "" {
		userID = &txn.UserID
	}
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.BatchID, txn.TypeID, txn.Quantity, txn.UnitID,
		txn.Date, userID, txn.Notes, txn.RelatedTankID, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListByBatch transacciones de un lote, más recientes primero.
func (r *TransactionRepo) ListByBatch(batchID string) ([]*entity.Transaction, error) {
	return r.list(`SELECT `+transactionColumns+`
		FROM transactions WHERE batch_id = $1
		ORDER BY date DESC, created_at DESC`, batchID)
}

// ListByBatchAndType transacciones de un lote filtradas por tipo, más recientes primero.
func (r *TransactionRepo) ListByBatchAndType(batchID, typeID string) ([]*entity.Transaction, error) {
	return r.list(`SELECT `+transactionColumns+`
		FROM transactions WHERE batch_id = $1 AND type_id = $2
		ORDER BY date DESC, created_at DESC`, batchID, typeID)
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, txn)
	}
	return list, rows.Err()
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var userID *string
	err := row.Scan(
		&t.ID, &t.BatchID, &t.TypeID, &t.Quantity, &t.UnitID,
		&t.Date, &userID, &t.Notes, &t.RelatedTankID, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if userID != nil {
		t.UserID = *userID
	}
	return &t, nil
}
