package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

func responseFor(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/fail", func(c *fiber.Ctx) error {
		return writeError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestWriteErrorValidation(t *testing.T) {
	status, body := responseFor(t, &domain.ValidationError{
		Rule:    domain.RuleMinimumAdvance,
		Message: "a minimum advance payment of 300.00 is required",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, string(domain.RuleMinimumAdvance), body["rule"])
	assert.Contains(t, body["error"], "minimum advance")
}

func TestWriteErrorAuthorization(t *testing.T) {
	status, body := responseFor(t, &domain.AuthorizationError{})

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NotEmpty(t, body["error"])
}

func TestWriteErrorPaymentFailed(t *testing.T) {
	status, body := responseFor(t, &domain.PaymentFailedError{Message: "declined"})

	assert.Equal(t, fiber.StatusPaymentRequired, status)
	assert.Equal(t, true, body["retryable"])
}

func TestWriteErrorPaymentCancelledIsInformational(t *testing.T) {
	status, body := responseFor(t, &domain.PaymentCancelledError{})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.NotEmpty(t, body["info"])
	assert.Nil(t, body["error"], "a cancelled payment is not an error banner")
}

func TestWriteErrorRemotePassesStatusThrough(t *testing.T) {
	status, _ := responseFor(t, &domain.RemoteError{StatusCode: 503, Message: "unavailable"})
	assert.Equal(t, 503, status)
}

func TestWriteErrorRemoteOddStatusBecomesBadGateway(t *testing.T) {
	status, _ := responseFor(t, &domain.RemoteError{StatusCode: 0, Message: "connection refused"})
	assert.Equal(t, fiber.StatusBadGateway, status)
}

func TestWriteErrorWrappedErrorsStillMatch(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &domain.AuthorizationError{})
	status, _ := responseFor(t, wrapped)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestWriteErrorDefault(t *testing.T) {
	status, body := responseFor(t, errors.New("something odd"))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "something odd", body["error"])
}
