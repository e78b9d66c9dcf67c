package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

const batchColumns = `id, tank_id, name, start_date, yeast_date, lysozyme_date, completion_date, created_at`

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

// Create persiste un lote nuevo.
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (` + batchColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.TankID, batch.Name, batch.StartDate,
		batch.YeastDate, batch.LysozymeDate, batch.CompletionDate, batch.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID.
func (r *BatchRepo) GetByID(id string) (*entity.Batch, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+batchColumns+` FROM batches WHERE id = $1`, id)
	batch, err := scanBatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	return batch, nil
}

// Update actualiza fechas de hito y finalización del lote.
func (r *BatchRepo) Update(batch *entity.Batch) error {
	query := `
		UPDATE batches
		SET name = $2, yeast_date = $3, lysozyme_date = $4, completion_date = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		batch.ID, batch.Name, batch.YeastDate, batch.LysozymeDate, batch.CompletionDate,
	)
	if err != nil {
		return fmt.Errorf("update batch: %w", err)
	}
	return nil
}

// ListActive lotes sin fecha de finalización.
func (r *BatchRepo) ListActive() ([]*entity.Batch, error) {
	return r.list(`SELECT ` + batchColumns + `
		FROM batches WHERE completion_date IS NULL ORDER BY start_date`)
}

// ListCompleted lotes completados, más recientes primero (historial).
func (r *BatchRepo) ListCompleted() ([]*entity.Batch, error) {
	return r.list(`SELECT ` + batchColumns + `
		FROM batches WHERE completion_date IS NOT NULL ORDER BY completion_date DESC`)
}

func (r *BatchRepo) list(query string) ([]*entity.Batch, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	var list []*entity.Batch
	for rows.Next() {
		batch, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		list = append(list, batch)
	}
	return list, rows.Err()
}

func scanBatch(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	err := row.Scan(
		&b.ID, &b.TankID, &b.Name, &b.StartDate,
		&b.YeastDate, &b.LysozymeDate, &b.CompletionDate, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
