package repository

import "github.com/tu-usuario/cellar-pro/internal/domain/entity"

// UnitRepository define el puerto para unidades de medida (referencia inmutable).
type UnitRepository interface {
	GetByID(id string) (*entity.Unit, error)
	GetByAbbreviation(abbreviation string) (*entity.Unit, error)
	// ListByVolume unidades de volumen (true) o de peso (false).
	ListByVolume(isVolume bool) ([]entity.Unit, error)
}
