package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

// BatchHandler maneja las peticiones HTTP del ciclo de vida de lotes (protegido).
type BatchHandler struct {
	uc *cellar.BatchUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *cellar.BatchUseCase) *BatchHandler {
	return &BatchHandler{uc: uc}
}

// Start godoc
// @Summary      Iniciar lote en un tanque (con transacción de apertura)
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StartBatchRequest  true  "Datos del lote"
// @Success      201   {object}  dto.BatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/start [post]
func (h *BatchHandler) Start(c *fiber.Ctx) error {
	var in dto.StartBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := cellar.StartBatchInput{
		TankID:          in.TankID,
		Name:            in.Name,
		TypeID:          in.TransactionTypeID,
		InitialQuantity: in.InitialQuantity,
		UserID:          GetUserID(c),
		Notes:           in.Notes,
	}
	if in.StartDate != nil {
		input.StartDate = *in.StartDate
	}
	batch, err := h.uc.Start(c.Context(), input)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toBatchResponse(batch))
}

// Complete godoc
// @Summary      Completar lote (con merma automática si queda contenido)
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/complete [post]
func (h *BatchHandler) Complete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	batch, err := h.uc.Complete(c.Context(), id, GetUserID(c))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toBatchResponse(batch))
}

// GetByID godoc
// @Summary      Obtener lote por ID
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del lote"
// @Success      200  {object}  dto.BatchResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	batch, err := h.uc.GetByID(id)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toBatchResponse(batch))
}

// ListActive godoc
// @Summary      Listar lotes activos
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches/active [get]
func (h *BatchHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.uc.ListActive()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toBatchListResponse(list))
}

// ListCompleted godoc
// @Summary      Listar lotes completados (más recientes primero)
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BatchListResponse
// @Router       /api/batches/completed [get]
func (h *BatchHandler) ListCompleted(c *fiber.Ctx) error {
	list, err := h.uc.ListCompleted()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(toBatchListResponse(list))
}

func toBatchResponse(b *entity.Batch) dto.BatchResponse {
	return dto.BatchResponse{
		ID:                 b.ID,
		TankID:             b.TankID,
		Name:               b.Name,
		StartDate:          b.StartDate,
		YeastDate:          b.YeastDate,
		LysozymeDate:       b.LysozymeDate,
		CompletionDate:     b.CompletionDate,
		Active:             b.IsActive(),
		DaysInFermentation: b.DaysInFermentation(),
	}
}

func toBatchListResponse(list []*entity.Batch) dto.BatchListResponse {
	items := make([]dto.BatchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBatchResponse(b))
	}
	return dto.BatchListResponse{Items: items}
}
