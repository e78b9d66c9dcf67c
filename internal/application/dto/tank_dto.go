package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTankRequest body para POST /api/tanks.
type CreateTankRequest struct {
	Label          string          `json:"label"`
	Capacity       decimal.Decimal `json:"capacity"`
	CapacityUnitID string          `json:"capacity_unit_id"`
}

// UpdateTankRequest body para PUT /api/tanks/:label. Solo los campos
// presentes se actualizan.
type UpdateTankRequest struct {
	NewLabel          *string          `json:"new_label,omitempty"`
	NewCapacity       *decimal.Decimal `json:"new_capacity,omitempty"`
	NewCapacityUnitID *string          `json:"new_capacity_unit_id,omitempty"`
}

// TankResponse representación HTTP de un tanque.
type TankResponse struct {
	ID              string          `json:"id"`
	Label           string          `json:"label"`
	Capacity        decimal.Decimal `json:"capacity"`
	CapacityUnitID  string          `json:"capacity_unit_id"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	CurrentBatchID  *string         `json:"current_batch_id,omitempty"`
	PercentFull     decimal.Decimal `json:"percent_full"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty"`
}

// TankListResponse listado de tanques.
type TankListResponse struct {
	Items []TankResponse `json:"items"`
}
