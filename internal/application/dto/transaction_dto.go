package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordTransactionRequest body para POST /api/batches/:id/transactions.
type RecordTransactionRequest struct {
	TransactionTypeID string          `json:"transaction_type_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	Date              *time.Time      `json:"date,omitempty"` // nil = ahora
	Notes             string          `json:"notes,omitempty"`
}

// TransactionResponse representación HTTP de una transacción del libro.
type TransactionResponse struct {
	ID            string          `json:"id"`
	BatchID       string          `json:"batch_id"`
	TypeID        string          `json:"type_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitID        string          `json:"unit_id"`
	Date          time.Time       `json:"date"`
	UserID        string          `json:"user_id,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	RelatedTankID *string         `json:"related_tank_id,omitempty"`
}

// TransactionListResponse listado de transacciones de un lote.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
}

// TransferRequest body para POST /api/transfers: mueve todo el contenido del
// tanque del lote origen al lote activo del tanque destino.
type TransferRequest struct {
	SourceBatchID        string `json:"source_batch_id"`
	DestinationTankLabel string `json:"destination_tank_label"`
	Notes                string `json:"notes,omitempty"`
}

// TransferResponse las dos transacciones resultantes de la transferencia.
type TransferResponse struct {
	Outgoing TransactionResponse `json:"outgoing"`
	Incoming TransactionResponse `json:"incoming"`
}
