package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.TransactionTypeRepository = (*TransactionTypeRepo)(nil)

const transactionTypeColumns = `id, name, description, unit_id, affects_tank_quantity, quantity_multiplier, milestone, milestone_policy`

// TransactionTypeRepo acceso de lectura al catálogo de tipos de transacción.
type TransactionTypeRepo struct {
	q Querier
}

// NewTransactionTypeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionTypeRepository(q Querier) *TransactionTypeRepo {
	return &TransactionTypeRepo{q: q}
}

// ListAll todos los tipos (carga de la caché al arranque).
func (r *TransactionTypeRepo) ListAll() ([]entity.TransactionType, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+transactionTypeColumns+` FROM transaction_types ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list transaction types: %w", err)
	}
	defer rows.Close()
	var list []entity.TransactionType
	for rows.Next() {
		var t entity.TransactionType
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.UnitID,
			&t.AffectsTankQuantity, &t.QuantityMultiplier, &t.Milestone, &t.MilestonePolicy); err != nil {
			return nil, fmt.Errorf("scan transaction type: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// GetByName obtiene un tipo por nombre (setup y datos de prueba).
func (r *TransactionTypeRepo) GetByName(name string) (*entity.TransactionType, error) {
	var t entity.TransactionType
	err := r.q.QueryRow(context.Background(),
		`SELECT `+transactionTypeColumns+` FROM transaction_types WHERE name = $1`, name).
		Scan(&t.ID, &t.Name, &t.Description, &t.UnitID,
			&t.AffectsTankQuantity, &t.QuantityMultiplier, &t.Milestone, &t.MilestonePolicy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction type: %w", err)
	}
	return &t, nil
}
