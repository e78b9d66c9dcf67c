package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `id, name, abbreviation, is_volume`

// UnitRepo acceso de lectura a las unidades de medida.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// GetByID obtiene una unidad por ID.
func (r *UnitRepo) GetByID(id string) (*entity.Unit, error) {
	return r.getOne(`SELECT `+unitColumns+` FROM units WHERE id = $1`, id)
}

// GetByAbbreviation obtiene una unidad por abreviatura (ej. "bbl").
func (r *UnitRepo) GetByAbbreviation(abbreviation string) (*entity.Unit, error) {
	return r.getOne(`SELECT `+unitColumns+` FROM units WHERE abbreviation = $1`, abbreviation)
}

// ListByVolume unidades de volumen (true) o de peso (false).
func (r *UnitRepo) ListByVolume(isVolume bool) ([]entity.Unit, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+unitColumns+` FROM units WHERE is_volume = $1 ORDER BY name`, isVolume)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []entity.Unit
	for rows.Next() {
		var u entity.Unit
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.IsVolume); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *UnitRepo) getOne(query string, args ...any) (*entity.Unit, error) {
	var u entity.Unit
	err := r.q.QueryRow(context.Background(), query, args...).
		Scan(&u.ID, &u.Name, &u.Abbreviation, &u.IsVolume)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return &u, nil
}
