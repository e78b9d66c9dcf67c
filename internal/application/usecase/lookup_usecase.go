package usecase

import (
	"sort"

	"github.com/tu-usuario/cellar-pro/internal/application/cellar"
	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain/repository"
)

// LookupUseCase datos de referencia para formularios: unidades de volumen y
// catálogo de tipos de transacción (desde la caché, no desde la BD).
type LookupUseCase struct {
	unitRepo repository.UnitRepository
	types    *cellar.TypeCache
}

// NewLookupUseCase construye el caso de uso.
func NewLookupUseCase(unitRepo repository.UnitRepository, types *cellar.TypeCache) *LookupUseCase {
	return &LookupUseCase{unitRepo: unitRepo, types: types}
}

// ListVolumeUnits unidades de volumen (para capacidad de tanques).
func (uc *LookupUseCase) ListVolumeUnits() ([]dto.UnitResponse, error) {
	units, err := uc.unitRepo.ListByVolume(true)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, dto.UnitResponse{
			ID:           u.ID,
			Name:         u.Name,
			Abbreviation: u.Abbreviation,
			IsVolume:     u.IsVolume,
		})
	}
	return out, nil
}

// ListTransactionTypes catálogo de tipos, ordenado por nombre.
func (uc *LookupUseCase) ListTransactionTypes() []dto.TransactionTypeResponse {
	types := uc.types.All()
	sort.Slice(types, func(i, j int) bool { return types[i].Name < types[j].Name })
	out := make([]dto.TransactionTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, dto.TransactionTypeResponse{
			ID:                  t.ID,
			Name:                t.Name,
			Description:         t.Description,
			UnitID:              t.UnitID,
			AffectsTankQuantity: t.AffectsTankQuantity,
			QuantityMultiplier:  t.QuantityMultiplier,
			Milestone:           t.Milestone,
		})
	}
	return out
}
