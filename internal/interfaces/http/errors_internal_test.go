package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cellar-pro/internal/application/dto"
	"github.com/tu-usuario/cellar-pro/internal/domain"
)

// respondWith monta una ruta que siempre responde con el error dado.
func respondWith(t *testing.T, err error) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondDomainError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, reqErr)

	var body dto.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp, body
}

func TestRespondDomainError_NotFound404(t *testing.T) {
	resp, body := respondWith(t, domain.NotFound("tank", "FV-01"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestRespondDomainError_Conflict409(t *testing.T) {
	resp, body := respondWith(t, domain.Conflict("tank", "FV-01", domain.RuleDuplicateLabel, "duplicada"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body.Code)
	assert.Equal(t, domain.RuleDuplicateLabel, body.Rule)
}

func TestRespondDomainError_Validation400(t *testing.T) {
	resp, body := respondWith(t, domain.Validation("tank", "FV-01", domain.RuleExceedsCapacity, "excede"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, domain.RuleExceedsCapacity, body.Rule)
}

// Errores no clasificados son 500 y no filtran el detalle interno.
func TestRespondDomainError_Interno500SinDetalles(t *testing.T) {
	resp, body := respondWith(t, errors.New("pgx: conexión rechazada 10.0.0.5"))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotContains(t, body.Message, "pgx", "el mensaje interno no debe llegar al cliente")
}
