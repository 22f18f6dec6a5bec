package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

type stubDirectory struct {
	guests []domain.KnownGuest
}

func (s *stubDirectory) SearchKnownGuests(context.Context, string) ([]domain.KnownGuest, error) {
	return s.guests, nil
}

func draftTestApp() *fiber.App {
	handler := NewDraftHandler(&stubDirectory{guests: []domain.KnownGuest{
		{ID: "kg-1", FirstName: "Ana", LastName: "Torres", Age: 34, Phone: "999", Email: "ana@example.com"},
	}})

	app := fiber.New()
	drafts := app.Group("/api/drafts", BearerAuth(""))
	drafts.Post("/resize", handler.Resize)
	drafts.Post("/guest-field", handler.UpdateGuestField)
	drafts.Post("/known-guest", handler.ApplyKnownGuest)
	drafts.Post("/known-guest/clear", handler.ClearKnownGuest)
	drafts.Post("/known-guest/options", handler.SelectableKnownGuests)
	drafts.Post("/quote", handler.Quote)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) (int, map[string]json.RawMessage) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer session-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

func decodeDraft(t *testing.T, envelope map[string]json.RawMessage) domain.BookingDraft {
	t.Helper()
	var draft domain.BookingDraft
	require.NoError(t, json.Unmarshal(envelope["data"], &draft))
	return draft
}

func TestDraftResizeEndpoint(t *testing.T) {
	app := draftTestApp()

	status, envelope := postJSON(t, app, "/api/drafts/resize", map[string]interface{}{
		"draft":    domain.NewBookingDraft(),
		"newCount": 3,
	})

	require.Equal(t, fiber.StatusOK, status)
	draft := decodeDraft(t, envelope)
	assert.Equal(t, 3, draft.OccupancyCount)
	require.Len(t, draft.Guests, 3)
	assert.True(t, draft.Guests[0].IsPrimary)
}

func TestDraftGuestFieldEndpointSyncsContact(t *testing.T) {
	app := draftTestApp()

	status, envelope := postJSON(t, app, "/api/drafts/guest-field", map[string]interface{}{
		"draft": domain.NewBookingDraft(),
		"index": 0,
		"field": "firstName",
		"value": "Ana",
	})

	require.Equal(t, fiber.StatusOK, status)
	draft := decodeDraft(t, envelope)
	assert.Equal(t, "Ana", draft.Guests[0].FirstName)
	assert.Equal(t, "Ana", draft.CustomerName)
}

func TestDraftGuestFieldEndpointBadIndex(t *testing.T) {
	app := draftTestApp()

	status, _ := postJSON(t, app, "/api/drafts/guest-field", map[string]interface{}{
		"draft": domain.NewBookingDraft(),
		"index": 7,
		"field": "firstName",
		"value": "Ana",
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestDraftKnownGuestEndpoint(t *testing.T) {
	app := draftTestApp()

	status, envelope := postJSON(t, app, "/api/drafts/known-guest", map[string]interface{}{
		"draft":        domain.NewBookingDraft(),
		"index":        0,
		"knownGuestId": "kg-1",
	})

	require.Equal(t, fiber.StatusOK, status)
	draft := decodeDraft(t, envelope)
	assert.Equal(t, "Ana", draft.Guests[0].FirstName)
	assert.Equal(t, "kg-1", draft.Guests[0].KnownGuestRef)
	assert.Equal(t, "Ana Torres", draft.CustomerName)
}

func TestDraftQuoteEndpoint(t *testing.T) {
	app := draftTestApp()

	draft := domain.NewBookingDraft()
	draft.CheckInDate = mustTime(t, "2026-03-10")
	draft.CheckOutDate = mustTime(t, "2026-03-13")
	draft.NightlyRate = 1000

	status, envelope := postJSON(t, app, "/api/drafts/quote", map[string]interface{}{"draft": draft})

	require.Equal(t, fiber.StatusOK, status)
	var quote domain.PriceQuote
	require.NoError(t, json.Unmarshal(envelope["data"], &quote))
	assert.Equal(t, 3, quote.DurationNights)
	assert.Equal(t, 3000.0, quote.TotalAmount)
	assert.Equal(t, 300.0, quote.MinimumAdvance)
}

func TestDraftEndpointsRequireCredential(t *testing.T) {
	app := draftTestApp()

	body, _ := json.Marshal(map[string]interface{}{"draft": domain.NewBookingDraft(), "newCount": 2})
	req := httptest.NewRequest("POST", "/api/drafts/resize", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
