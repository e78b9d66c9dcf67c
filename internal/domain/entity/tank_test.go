package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/cellar-pro/internal/domain/entity"
)

func TestValidLabel(t *testing.T) {
	valid := []string{"FV-01", "bright_tank_2", "T1", "fv-01-B"}
	for _, label := range valid {
		assert.True(t, entity.ValidLabel(label), "etiqueta %q debe ser válida", label)
	}

	invalid := []string{"", "FV 01", "FV/01", "tanque#1", "año-1", "FV.01"}
	for _, label := range invalid {
		assert.False(t, entity.ValidLabel(label), "etiqueta %q debe ser inválida", label)
	}
}

func TestTank_PercentFull(t *testing.T) {
	tank := &entity.Tank{
		Capacity:        decimal.RequireFromString("1500"),
		CurrentQuantity: decimal.RequireFromString("500"),
	}
	// 500/1500 = 33.333... -> redondeado a dos decimales
	assert.True(t, tank.PercentFull().Equal(decimal.RequireFromString("33.33")),
		"obtenido %s", tank.PercentFull())
}

func TestTank_PercentFull_CapacidadCero(t *testing.T) {
	tank := &entity.Tank{Capacity: decimal.Zero, CurrentQuantity: decimal.Zero}
	assert.True(t, tank.PercentFull().IsZero(), "capacidad cero no debe dividir")
}

func TestTank_IsLowCapacity(t *testing.T) {
	tank := &entity.Tank{
		Capacity:        decimal.RequireFromString("1000"),
		CurrentQuantity: decimal.RequireFromString("50"),
	}
	assert.True(t, tank.IsLowCapacity(10), "5%% está por debajo del umbral de 10%%")
	assert.False(t, tank.IsLowCapacity(5), "5%% no está por debajo del umbral de 5%%")
}

func TestTank_IsAvailable(t *testing.T) {
	tank := &entity.Tank{Status: entity.TankStatusActive}
	assert.True(t, tank.IsAvailable())

	batchID := "batch-1"
	tank.CurrentBatchID = &batchID
	assert.False(t, tank.IsAvailable())
}
