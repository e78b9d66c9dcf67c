package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// TankUseCase registro de tanques: alta, consulta, actualización, borrado
// lógico y restauración. Las etiquetas son únicas incluso frente a tanques
// borrados (la etiqueta de un tanque borrado queda reservada: evita la
// ambigüedad de referencias históricas si se reutilizara).
type TankUseCase struct {
	tankRepo repository.TankRepository
	unitRepo repository.UnitRepository
}

// NewTankUseCase construye el caso de uso.
func NewTankUseCase(tankRepo repository.TankRepository, unitRepo repository.UnitRepository) *TankUseCase {
	return &TankUseCase{tankRepo: tankRepo, unitRepo: unitRepo}
}

// Create da de alta un tanque con cantidad cero.
// La unidad de capacidad debe ser de volumen (no peso).
func (uc *TankUseCase) Create(in dto.CreateTankRequest) (*dto.TankResponse, error) {
	if !entity.ValidLabel(in.Label) {
		return nil, domain.Validation("tank", in.Label, domain.RuleLabelFormat,
			"la etiqueta solo admite letras, números, guiones y guiones bajos")
	}
	if !in.Capacity.IsPositive() {
		return nil, domain.Validation("tank", in.Label, domain.RuleInvalidCapacity,
			"la capacidad debe ser mayor que cero")
	}
	unit, err := uc.unitRepo.GetByID(in.CapacityUnitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.NotFound("unit", in.CapacityUnitID)
	}
	if !unit.IsVolume {
		return nil, domain.Validation("tank", in.Label, domain.RuleNotVolumeUnit,
			"la capacidad debe expresarse en unidades de volumen, no de peso")
	}
	exists, err := uc.tankRepo.ExistsLabel(in.Label)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.Conflict("tank", in.Label, domain.RuleDuplicateLabel,
			"ya existe un tanque con esa etiqueta")
	}

	tank := &entity.Tank{
		ID:              uuid.New().String(),
		Label:           in.Label,
		Capacity:        in.Capacity,
		CapacityUnitID:  unit.ID,
		CurrentQuantity: decimal.Zero,
		Status:          entity.TankStatusActive,
		CreatedAt:       time.Now(),
	}
	if err := uc.tankRepo.Create(tank); err != nil {
		return nil, err
	}
	return toTankResponse(tank), nil
}

// GetByLabel obtiene un tanque por etiqueta (excluye borrados).
func (uc *TankUseCase) GetByLabel(label string) (*dto.TankResponse, error) {
	tank, err := uc.tankRepo.GetByLabel(label)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", label)
	}
	return toTankResponse(tank), nil
}

// GetByID obtiene un tanque por ID, incluyendo borrados (uso administrativo).
func (uc *TankUseCase) GetByID(id string) (*dto.TankResponse, error) {
	tank, err := uc.tankRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", id)
	}
	return toTankResponse(tank), nil
}

// Update actualiza etiqueta y/o capacidad de un tanque. Renombrar re-verifica
// unicidad; la capacidad no puede quedar por debajo del contenido actual.
func (uc *TankUseCase) Update(label string, in dto.UpdateTankRequest) (*dto.TankResponse, error) {
	tank, err := uc.tankRepo.GetByLabel(label)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", label)
	}

	if in.NewLabel != nil && *in.NewLabel != tank.Label {
		if !entity.ValidLabel(*in.NewLabel) {
			return nil, domain.Validation("tank", *in.NewLabel, domain.RuleLabelFormat,
				"la etiqueta solo admite letras, números, guiones y guiones bajos")
		}
		exists, err := uc.tankRepo.ExistsLabel(*in.NewLabel)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.Conflict("tank", *in.NewLabel, domain.RuleDuplicateLabel,
				"ya existe un tanque con esa etiqueta")
		}
		tank.Label = *in.NewLabel
	}

	if in.NewCapacity != nil {
		if !in.NewCapacity.IsPositive() {
			return nil, domain.Validation("tank", tank.Label, domain.RuleInvalidCapacity,
				"la capacidad debe ser mayor que cero")
		}
		if in.NewCapacity.LessThan(tank.CurrentQuantity) {
			return nil, domain.Validation("tank", tank.Label, domain.RuleCapacityBelowContents,
				"la capacidad no puede quedar por debajo del contenido actual")
		}
		tank.Capacity = *in.NewCapacity
	}

	if in.NewCapacityUnitID != nil {
		unit, err := uc.unitRepo.GetByID(*in.NewCapacityUnitID)
		if err != nil {
			return nil, err
		}
		if unit == nil {
			return nil, domain.NotFound("unit", *in.NewCapacityUnitID)
		}
		if !unit.IsVolume {
			return nil, domain.Validation("tank", tank.Label, domain.RuleNotVolumeUnit,
				"la capacidad debe expresarse en unidades de volumen, no de peso")
		}
		tank.CapacityUnitID = unit.ID
	}

	if err := uc.tankRepo.Update(tank); err != nil {
		return nil, err
	}
	return toTankResponse(tank), nil
}

// SoftDelete marca el tanque como borrado. No toca cantidad ni referencia de
// lote: solo estampa el borrado.
func (uc *TankUseCase) SoftDelete(label string) (*dto.TankResponse, error) {
	tank, err := uc.tankRepo.GetByLabel(label)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", label)
	}
	now := time.Now()
	tank.Status = entity.TankStatusDeleted
	tank.DeletedAt = &now
	if err := uc.tankRepo.Update(tank); err != nil {
		return nil, err
	}
	return toTankResponse(tank), nil
}

// Restore revierte el borrado lógico de un tanque.
func (uc *TankUseCase) Restore(label string) (*dto.TankResponse, error) {
	tank, err := uc.tankRepo.GetByLabelIncludingDeleted(label)
	if err != nil {
		return nil, err
	}
	if tank == nil {
		return nil, domain.NotFound("tank", label)
	}
	if !tank.IsDeleted() {
		return nil, domain.Conflict("tank", label, domain.RuleTankNotDeleted,
			"el tanque no está borrado")
	}
	tank.Status = entity.TankStatusActive
	tank.DeletedAt = nil
	if err := uc.tankRepo.Update(tank); err != nil {
		return nil, err
	}
	return toTankResponse(tank), nil
}

// ListAvailable tanques sin lote activo (candidatos para iniciar un lote).
func (uc *TankUseCase) ListAvailable() (*dto.TankListResponse, error) {
	list, err := uc.tankRepo.ListAvailable()
	if err != nil {
		return nil, err
	}
	return toTankListResponse(list), nil
}

// ListOccupied tanques con lote activo.
func (uc *TankUseCase) ListOccupied() (*dto.TankListResponse, error) {
	list, err := uc.tankRepo.ListOccupied()
	if err != nil {
		return nil, err
	}
	return toTankListResponse(list), nil
}

// ListDeleted tanques borrados lógicamente (vista administrativa).
func (uc *TankUseCase) ListDeleted() (*dto.TankListResponse, error) {
	list, err := uc.tankRepo.ListDeleted()
	if err != nil {
		return nil, err
	}
	return toTankListResponse(list), nil
}

func toTankResponse(t *entity.Tank) *dto.TankResponse {
	if t == nil {
		return nil
	}
	return &dto.TankResponse{
		ID:              t.ID,
		Label:           t.Label,
		Capacity:        t.Capacity,
		CapacityUnitID:  t.CapacityUnitID,
		CurrentQuantity: t.CurrentQuantity,
		CurrentBatchID:  t.CurrentBatchID,
		PercentFull:     t.PercentFull(),
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		DeletedAt:       t.DeletedAt,
	}
}

func toTankListResponse(list []*entity.Tank) *dto.TankListResponse {
	items := make([]dto.TankResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTankResponse(t))
	}
	return &dto.TankListResponse{Items: items}
}
