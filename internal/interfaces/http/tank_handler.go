package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/application/usecase"
)

// TankHandler maneja las peticiones HTTP del registro de tanques (protegido).
// Las rutas direccionan los tanques por etiqueta, no por ID.
type TankHandler struct {
	uc *usecase.TankUseCase
}

// NewTankHandler construye el handler.
func NewTankHandler(uc *usecase.TankUseCase) *TankHandler {
	return &TankHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tanque
// @Tags         tanks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTankRequest  true  "Datos del tanque"
// @Success      201   {object}  dto.TankResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/tanks [post]
func (h *TankHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTankRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "label es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByLabel godoc
// @Summary      Obtener tanque por etiqueta
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Param        label  path  string  true  "Etiqueta del tanque"
// @Success      200  {object}  dto.TankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{label} [get]
func (h *TankHandler) GetByLabel(c *fiber.Ctx) error {
	label := c.Params("label")
	if label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LABEL", Message: "label es requerido"})
	}
	out, err := h.uc.GetByLabel(label)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tanque (etiqueta y/o capacidad)
// @Tags         tanks
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        label  path  string  true  "Etiqueta del tanque"
// @Param        body   body  dto.UpdateTankRequest  true  "Campos a actualizar"
// @Success      200  {object}  dto.TankResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tanks/{label} [put]
func (h *TankHandler) Update(c *fiber.Ctx) error {
	label := c.Params("label")
	if label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LABEL", Message: "label es requerido"})
	}
	var in dto.UpdateTankRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(label, in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de tanque
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Param        label  path  string  true  "Etiqueta del tanque"
// @Success      200  {object}  dto.TankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tanks/{label} [delete]
func (h *TankHandler) Delete(c *fiber.Ctx) error {
	label := c.Params("label")
	if label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LABEL", Message: "label es requerido"})
	}
	out, err := h.uc.SoftDelete(label)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar tanque borrado
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Param        label  path  string  true  "Etiqueta del tanque"
// @Success      200  {object}  dto.TankResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tanks/{label}/restore [post]
func (h *TankHandler) Restore(c *fiber.Ctx) error {
	label := c.Params("label")
	if label == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_LABEL", Message: "label es requerido"})
	}
	out, err := h.uc.Restore(label)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListAvailable godoc
// @Summary      Listar tanques disponibles (sin lote)
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TankListResponse
// @Router       /api/tanks/available [get]
func (h *TankHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListOccupied godoc
// @Summary      Listar tanques ocupados (con lote activo)
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TankListResponse
// @Router       /api/tanks/occupied [get]
func (h *TankHandler) ListOccupied(c *fiber.Ctx) error {
	out, err := h.uc.ListOccupied()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}

// ListDeleted godoc
// @Summary      Listar tanques borrados
// @Tags         tanks
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TankListResponse
// @Router       /api/tanks/deleted [get]
func (h *TankHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.uc.ListDeleted()
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(out)
}
