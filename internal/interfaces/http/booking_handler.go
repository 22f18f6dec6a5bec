package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/application"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// BookingHandler exposes booking submission and the status-gated mutations.
type BookingHandler struct {
	orchestrator *application.BookingSubmissionOrchestrator
	actions      *application.BookingActionsService
	limiter      *application.SubmissionLimiter
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(
	orchestrator *application.BookingSubmissionOrchestrator,
	actions *application.BookingActionsService,
	limiter *application.SubmissionLimiter,
) *BookingHandler {
	return &BookingHandler{
		orchestrator: orchestrator,
		actions:      actions,
		limiter:      limiter,
	}
}

// SubmitBookingRequest carries the completed draft plus the payment details
// collected by the payment form (ignored for cash).
type SubmitBookingRequest struct {
	Draft          domain.BookingDraft        `json:"draft"`
	PaymentDetails application.PaymentDetails `json:"paymentDetails"`
}

// UpdateContactRequest changes the booking's contact fields.
type UpdateContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SubmitBooking runs the full submission sequence and returns the receipt.
func (h *BookingHandler) SubmitBooking(c *fiber.Ctx) error {
	credential := credentialFrom(c)

	if h.limiter != nil {
		if ok, err := h.limiter.Allow(credential); !ok {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	var req SubmitBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	receipt, err := h.orchestrator.Submit(c.Context(), credential, &req.Draft, req.PaymentDetails)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "booking created successfully",
		"data":    receipt,
	})
}

// GetBooking returns the booking with its capability flags, computed fresh
// from the just-fetched status.
func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "booking id is required",
		})
	}

	view, err := h.actions.GetBookingView(c.Context(), credentialFrom(c), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": view,
	})
}

// UpdateContact changes the booking's contact fields if its status allows.
func (h *BookingHandler) UpdateContact(c *fiber.Ctx) error {
	id := c.Params("id")

	var req UpdateContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	contact := domain.ContactFields{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := h.actions.UpdateContact(c.Context(), credentialFrom(c), id, contact); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "contact details updated successfully",
	})
}

// CancelBooking cancels the booking if its status allows.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.actions.Cancel(c.Context(), credentialFrom(c), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "booking cancelled successfully",
	})
}
