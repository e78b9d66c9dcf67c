package entity

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un tanque. El borrado es lógico: el tanque conserva su historial
// y puede restaurarse; la etiqueta queda reservada.
const (
	TankStatusActive  = "active"
	TankStatusDeleted = "deleted"
)

// labelPattern etiquetas URL-safe: se usan en rutas (/api/tanks/:label).
var labelPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Tank representa un tanque fermentador físico.
// Invariante: 0 <= CurrentQuantity <= Capacity tras toda operación confirmada.
// Invariante: CurrentBatchID es nil o referencia exactamente un lote activo.
type Tank struct {
	ID              string
	Label           string
	Capacity        decimal.Decimal // siempre en la unidad de volumen CapacityUnitID
	CapacityUnitID  string
	CurrentQuantity decimal.Decimal
	CurrentBatchID  *string
	Status          string // TankStatusActive | TankStatusDeleted
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// ValidLabel verifica que la etiqueta sea URL-safe (letras, números, guiones).
func ValidLabel(label string) bool {
	return labelPattern.MatchString(label)
}

// IsDeleted indica si el tanque está borrado lógicamente.
func (t *Tank) IsDeleted() bool {
	return t.Status == TankStatusDeleted
}

// IsAvailable indica si el tanque no tiene lote activo (disponible para iniciar uno).
func (t *Tank) IsAvailable() bool {
	return t.CurrentBatchID == nil
}

// PercentFull porcentaje de llenado (0-100, dos decimales).
func (t *Tank) PercentFull() decimal.Decimal {
	if t.Capacity.IsZero() {
		return decimal.Zero
	}
	return t.CurrentQuantity.
		Div(t.Capacity).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}

// IsLowCapacity indica si el llenado está por debajo del umbral (porcentaje 0-100).
func (t *Tank) IsLowCapacity(thresholdPercent int) bool {
	if t.Capacity.IsZero() {
		return false
	}
	return t.PercentFull().LessThan(decimal.NewFromInt(int64(thresholdPercent)))
}
