package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.TankRepository = (*TankRepo)(nil)

const tankColumns = `id, label, capacity, capacity_unit_id, current_quantity, current_batch_id, status, created_at, deleted_at`

// TankRepo implementación de TankRepository sobre PostgreSQL (usable con pool o tx).
type TankRepo struct {
	q Querier
}

// NewTankRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTankRepository(q Querier) *TankRepo {
	return &TankRepo{q: q}
}

// Create persiste un tanque nuevo. Una violación del índice único de label
// se traduce a Conflict de dominio.
func (r *TankRepo) Create(tank *entity.Tank) error {
	query := `
		INSERT INTO tanks (` + tankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		tank.ID, tank.Label, tank.Capacity, tank.CapacityUnitID,
		tank.CurrentQuantity, tank.CurrentBatchID, tank.Status,
		tank.CreatedAt, tank.DeletedAt,
	)
	if err != nil {
		return conflictOnUnique(err, "tank", tank.Label, domain.RuleDuplicateLabel,
			"ya existe un tanque con esa etiqueta")
	}
	return nil
}

// GetByID obtiene un tanque por ID, incluyendo borrados (uso administrativo).
func (r *TankRepo) GetByID(id string) (*entity.Tank, error) {
	return r.getOne(`SELECT `+tankColumns+` FROM tanks WHERE id = $1`, id)
}

// GetByLabel obtiene un tanque por etiqueta, excluyendo borrados.
func (r *TankRepo) GetByLabel(label string) (*entity.Tank, error) {
	return r.getOne(`SELECT `+tankColumns+` FROM tanks WHERE label = $1 AND status <> 'deleted'`, label)
}

// GetByLabelIncludingDeleted obtiene un tanque por etiqueta, incluso borrado.
func (r *TankRepo) GetByLabelIncludingDeleted(label string) (*entity.Tank, error) {
	return r.getOne(`SELECT `+tankColumns+` FROM tanks WHERE label = $1`, label)
}

// ExistsLabel indica si la etiqueta ya está tomada, incluyendo tanques
// borrados (la etiqueta queda reservada).
func (r *TankRepo) ExistsLabel(label string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM tanks WHERE label = $1)`, label).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists tank label: %w", err)
	}
	return exists, nil
}

// Update actualiza los campos mutables del tanque.
func (r *TankRepo) Update(tank *entity.Tank) error {
	query := `
		UPDATE tanks
		SET label = $2, capacity = $3, capacity_unit_id = $4,
		    current_quantity = $5, current_batch_id = $6, status = $7, deleted_at = $8
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tank.ID, tank.Label, tank.Capacity, tank.CapacityUnitID,
		tank.CurrentQuantity, tank.CurrentBatchID, tank.Status, tank.DeletedAt,
	)
	if err != nil {
		return conflictOnUnique(err, "tank", tank.Label, domain.RuleDuplicateLabel,
			"ya existe un tanque con esa etiqueta")
	}
	return nil
}

// ListAvailable tanques activos sin lote asignado.
func (r *TankRepo) ListAvailable() ([]*entity.Tank, error) {
	return r.list(`SELECT ` + tankColumns + `
		FROM tanks WHERE status <> 'deleted' AND current_batch_id IS NULL ORDER BY label`)
}

// ListOccupied tanques activos con lote asignado.
func (r *TankRepo) ListOccupied() ([]*entity.Tank, error) {
	return r.list(`SELECT ` + tankColumns + `
		FROM tanks WHERE status <> 'deleted' AND current_batch_id IS NOT NULL ORDER BY label`)
}

// ListDeleted tanques borrados lógicamente.
func (r *TankRepo) ListDeleted() ([]*entity.Tank, error) {
	return r.list(`SELECT ` + tankColumns + `
		FROM tanks WHERE status = 'deleted' ORDER BY label`)
}

// GetForUpdate obtiene el tanque y bloquea la fila (SELECT FOR UPDATE).
// Serializa las escrituras concurrentes sobre current_quantity dentro de la
// transacción del caller.
func (r *TankRepo) GetForUpdate(id string) (*entity.Tank, error) {
	return r.getOne(`SELECT `+tankColumns+` FROM tanks WHERE id = $1 FOR UPDATE`, id)
}

func (r *TankRepo) getOne(query string, args ...any) (*entity.Tank, error) {
	row := r.q.QueryRow(context.Background(), query, args...)
	tank, err := scanTank(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tank: %w", err)
	}
	return tank, nil
}

func (r *TankRepo) list(query string) ([]*entity.Tank, error) {
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tanks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Tank
	for rows.Next() {
		tank, err := scanTank(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tank: %w", err)
		}
		list = append(list, tank)
	}
	return list, rows.Err()
}

func scanTank(row pgx.Row) (*entity.Tank, error) {
	var t entity.Tank
	err := row.Scan(
		&t.ID, &t.Label, &t.Capacity, &t.CapacityUnitID,
		&t.CurrentQuantity, &t.CurrentBatchID, &t.Status,
		&t.CreatedAt, &t.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
