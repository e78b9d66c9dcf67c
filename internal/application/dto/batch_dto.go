package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StartBatchRequest body para POST /api/batches/start.
// El lote nace con su transacción de apertura (tipo + cantidad inicial).
type StartBatchRequest struct {
	TankID            string          `json:"tank_id"`
	Name              string          `json:"name"`
	StartDate         *time.Time      `json:"start_date,omitempty"` // nil = ahora
	TransactionTypeID string          `json:"transaction_type_id"`
	InitialQuantity   decimal.Decimal `json:"initial_quantity"`
	Notes             string          `json:"notes,omitempty"`
}

// BatchResponse representación HTTP de un lote.
type BatchResponse struct {
	ID                 string     `json:"id"`
	TankID             string     `json:"tank_id"`
	Name               string     `json:"name"`
	StartDate          time.Time  `json:"start_date"`
	YeastDate          *time.Time `json:"yeast_date,omitempty"`
	LysozymeDate       *time.Time `json:"lysozyme_date,omitempty"`
	CompletionDate     *time.Time `json:"completion_date,omitempty"`
	Active             bool       `json:"active"`
	DaysInFermentation int        `json:"days_in_fermentation"`
}

// BatchListResponse listado de lotes.
type BatchListResponse struct {
	Items []BatchResponse `json:"items"`
}
