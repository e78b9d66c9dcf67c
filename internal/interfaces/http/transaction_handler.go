package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// TransactionHandler maneja el libro de transacciones y las transferencias
// tanque a tanque (protegido).
type TransactionHandler struct {
	ledger   *cellar.LedgerUseCase
	transfer *cellar.TransferUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(ledger *cellar.LedgerUseCase, transfer *cellar.TransferUseCase) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, transfer: transfer}
}

// Record godoc
// @Summary      Registrar transacción en un lote
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del lote"
// @Param        body  body  dto.RecordTransactionRequest  true  "Datos de la transacción"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/transactions [post]
func (h *TransactionHandler) Record(c *fiber.Ctx) error {
	batchID := c.Params("id")
	if batchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := cellar.RecordTransactionInput{
		BatchID:  batchID,
		TypeID:   in.TransactionTypeID,
		Quantity: in.Quantity,
		UserID:   GetUserID(c),
		Notes:    in.Notes,
	}
	if in.Date != nil {
		input.Date = *in.Date
	}
	txn, err := h.ledger.Record(c.Context(), input)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(txn))
}

// ListByBatch godoc
// @Summary      Listar transacciones de un lote (más recientes primero)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del lote"
// @Param        type  query  string  false  "Filtrar por ID de tipo"
// @Success      200   {object}  dto.TransactionListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/transactions [get]
func (h *TransactionHandler) ListByBatch(c *fiber.Ctx) error {
	batchID := c.Params("id")
	if batchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	typeID := c.Query("type")
	var (
		list []*entity.Transaction
		err  error
	)
	if typeID != "" {
		list, err = h.ledger.ListByBatchAndType(batchID, typeID)
	} else {
		list, err = h.ledger.ListByBatch(batchID)
	}
	if err != nil {
		return respondDomainError(c, err)
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, txn := range list {
		items = append(items, toTransactionResponse(txn))
	}
	return c.JSON(dto.TransactionListResponse{Items: items})
}

// Transfer godoc
// @Summary      Transferir todo el contenido de un lote a otro tanque
// @Tags         transfers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Origen y destino"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransactionHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SourceBatchID == "" || in.DestinationTankLabel == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source_batch_id y destination_tank_label son requeridos"})
	}
	result, err := h.transfer.Transfer(c.Context(), cellar.TransferInput{
		SourceBatchID:        in.SourceBatchID,
		DestinationTankLabel: in.DestinationTankLabel,
		UserID:               GetUserID(c),
		Notes:                in.Notes,
	})
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Outgoing: toTransactionResponse(result.Outgoing),
		Incoming: toTransactionResponse(result.Incoming),
	})
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            t.ID,
		BatchID:       t.BatchID,
		TypeID:        t.TypeID,
		Quantity:      t.Quantity,
		UnitID:        t.UnitID,
		Date:          t.Date,
		UserID:        t.UserID,
		Notes:         t.Notes,
		RelatedTankID: t.RelatedTankID,
	}
}
