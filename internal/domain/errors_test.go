package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/domain"
)

func TestError_UnwrapACentinelas(t *testing.T) {
	assert.True(t, errors.Is(domain.NotFound("tank", "FV-01"), domain.ErrNotFound))
	assert.True(t, errors.Is(domain.Conflict("tank", "FV-01", domain.RuleDuplicateLabel, "dup"), domain.ErrConflict))
	assert.True(t, errors.Is(domain.Validation("tank", "FV-01", domain.RuleExceedsCapacity, "lleno"), domain.ErrValidation))
}

func TestError_Predicados(t *testing.T) {
	assert.True(t, domain.IsNotFound(domain.NotFound("batch", "b1")))
	assert.False(t, domain.IsConflict(domain.NotFound("batch", "b1")))
	assert.True(t, domain.IsValidation(domain.Validation("transaction", "", domain.RuleNegativeQuantity, "negativa")))
}

// El contexto estructurado sobrevive al wrapping con fmt.Errorf.
func TestError_ErrorAsTrasWrap(t *testing.T) {
	base := domain.Conflict("tank", "FV-01", domain.RuleTankOccupied, "ocupado")
	wrapped := fmt.Errorf("iniciar lote: %w", base)

	var derr *domain.Error
	require.ErrorAs(t, wrapped, &derr)
	assert.Equal(t, domain.KindConflict, derr.Kind)
	assert.Equal(t, domain.RuleTankOccupied, derr.Rule)
	assert.True(t, domain.IsConflict(wrapped))
}

func TestError_MensajeConYSinID(t *testing.T) {
	withID := domain.NotFound("tank", "FV-01")
	assert.Contains(t, withID.Error(), "FV-01")

	withoutID := domain.Validation("transaction", "", domain.RuleNegativeQuantity, "la cantidad no puede ser negativa")
	assert.Equal(t, "transaction: la cantidad no puede ser negativa", withoutID.Error())
}
