package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/application"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// DraftHandler shapes in-progress booking drafts. The endpoints are
// stateless: the UI sends the current draft, the handler applies one roster
// or pricing operation and returns the updated draft, so each flow keeps
// exclusive ownership of its own form state.
type DraftHandler struct {
	directory domain.GuestDirectory
}

// NewDraftHandler creates a new draft handler.
func NewDraftHandler(directory domain.GuestDirectory) *DraftHandler {
	return &DraftHandler{
		directory: directory,
	}
}

// ResizeRequest changes the draft's occupancy count.
type ResizeRequest struct {
	Draft    domain.BookingDraft `json:"draft"`
	NewCount int                 `json:"newCount"`
}

// GuestFieldRequest edits one field of one guest slot.
type GuestFieldRequest struct {
	Draft domain.BookingDraft `json:"draft"`
	Index int                 `json:"index"`
	Field string              `json:"field"`
	Value string              `json:"value"`
}

// KnownGuestRequest applies or clears a known guest on one slot.
type KnownGuestRequest struct {
	Draft        domain.BookingDraft `json:"draft"`
	Index        int                 `json:"index"`
	KnownGuestID string              `json:"knownGuestId,omitempty"`
}

// QuoteRequest computes the price quote for the draft's current inputs.
type QuoteRequest struct {
	Draft domain.BookingDraft `json:"draft"`
}

// Resize grows or shrinks the draft's guest roster.
func (h *DraftHandler) Resize(c *fiber.Ctx) error {
	var req ResizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	application.ResizeRoster(&req.Draft, req.NewCount)

	return c.JSON(fiber.Map{
		"data": req.Draft,
	})
}

// UpdateGuestField edits one guest field and re-derives the contact fields
// when the primary guest changed.
func (h *DraftHandler) UpdateGuestField(c *fiber.Ctx) error {
	var req GuestFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	if err := application.UpdateGuestField(&req.Draft, req.Index, application.GuestField(req.Field), req.Value); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": req.Draft,
	})
}

// ApplyKnownGuest autofills one slot from the known-guest directory.
func (h *DraftHandler) ApplyKnownGuest(c *fiber.Ctx) error {
	var req KnownGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	known, err := h.directory.SearchKnownGuests(c.Context(), credentialFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	if err := application.ApplyKnownGuest(&req.Draft, known, req.Index, req.KnownGuestID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": req.Draft,
	})
}

// ClearKnownGuest blanks one slot.
func (h *DraftHandler) ClearKnownGuest(c *fiber.Ctx) error {
	var req KnownGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	if err := application.ClearKnownGuest(&req.Draft, req.Index); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": req.Draft,
	})
}

// SelectableKnownGuests lists the directory annotated with which entries the
// given slot may still select.
func (h *DraftHandler) SelectableKnownGuests(c *fiber.Ctx) error {
	var req KnownGuestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	known, err := h.directory.SearchKnownGuests(c.Context(), credentialFrom(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": application.SelectableKnownGuests(&req.Draft, known, req.Index),
	})
}

// Quote recomputes the price quote from the draft's dates and rate.
func (h *DraftHandler) Quote(c *fiber.Ctx) error {
	var req QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	return c.JSON(fiber.Map{
		"data": application.QuoteForDraft(&req.Draft),
	})
}
