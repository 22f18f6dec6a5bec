package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/application"
	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// ReviewHandler exposes the single review a booking may carry.
type ReviewHandler struct {
	workflow *application.ReviewWorkflow
	reviews  domain.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(workflow *application.ReviewWorkflow, reviews domain.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		workflow: workflow,
		reviews:  reviews,
	}
}

// GetReview returns the booking's review, or an empty payload when none
// exists yet.
func (h *ReviewHandler) GetReview(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	review, err := h.reviews.FetchReview(c.Context(), credentialFrom(c), bookingID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"data": review,
	})
}

// CreateReview adds the booking's review once the stay has checked out.
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	bookingID := c.Params("id")

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	review, err := h.workflow.Create(c.Context(), credentialFrom(c), bookingID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "review created successfully",
		"data":    review,
	})
}

// UpdateReview edits an existing review.
func (h *ReviewHandler) UpdateReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	var input domain.ReviewInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}

	review, err := h.workflow.Update(c.Context(), credentialFrom(c), reviewID, input)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "review updated successfully",
		"data":    review,
	})
}

// DeleteReview removes an existing review.
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	reviewID := c.Params("id")

	if err := h.workflow.Delete(c.Context(), credentialFrom(c), reviewID); err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "review deleted successfully",
	})
}
