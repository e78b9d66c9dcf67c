package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// LookupHandler datos de referencia para formularios (protegido).
type LookupHandler struct {
	uc *usecase.LookupUseCase
}

// NewLookupHandler construye el handler.
func NewLookupHandler(uc *usecase.LookupUseCase) *LookupHandler {
	return &LookupHandler{uc: uc}
}

// ListVolumeUnits godoc
// @Summary      Listar unidades de volumen
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/lookups/units [get]
func (h *LookupHandler) ListVolumeUnits(c *fiber.Ctx) error {
	out, err := h.uc.ListVolumeUnits()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListTransactionTypes godoc
// @Summary      Listar tipos de transacción (catálogo en caché)
// @Tags         lookups
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TransactionTypeResponse
// @Router       /api/lookups/transaction-types [get]
func (h *LookupHandler) ListTransactionTypes(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListTransactionTypes())
}
