package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// ReviewWorkflow enforces the one-review-per-booking rules before delegating
// to the external review service.
type ReviewWorkflow struct {
	bookings domain.BookingService
	reviews  domain.ReviewService
}

// NewReviewWorkflow creates a new review workflow.
func NewReviewWorkflow(bookings domain.BookingService, reviews domain.ReviewService) *ReviewWorkflow {
	return &ReviewWorkflow{
		bookings: bookings,
		reviews:  reviews,
	}
}

// Create adds the booking's review. It is only legal once the booking has
// checked out, was confirmed, and carries no review yet.
func (w *ReviewWorkflow) Create(ctx context.Context, credential, bookingID string, input domain.ReviewInput) (*domain.Review, error) {
	if credential == "" {
		return nil, &domain.AuthorizationError{}
	}
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	booking, err := w.bookings.FetchBooking(ctx, credential, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if !CanReview(booking) {
		return nil, fmt.Errorf("this booking cannot be reviewed yet")
	}

	existing, err := w.reviews.FetchReview(ctx, credential, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch review: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("this booking already has a review")
	}

	return w.reviews.CreateReview(ctx, credential, bookingID, input)
}

// Update edits the booking's existing review.
func (w *ReviewWorkflow) Update(ctx context.Context, credential, reviewID string, input domain.ReviewInput) (*domain.Review, error) {
	if credential == "" {
		return nil, &domain.AuthorizationError{}
	}
	if err := validateReviewInput(input); err != nil {
		return nil, err
	}

	return w.reviews.UpdateReview(ctx, credential, reviewID, input)
}

// Delete removes the booking's existing review.
func (w *ReviewWorkflow) Delete(ctx context.Context, credential, reviewID string) error {
	if credential == "" {
		return &domain.AuthorizationError{}
	}

	return w.reviews.DeleteReview(ctx, credential, reviewID)
}

// validateReviewInput checks the guest-editable review fields.
func validateReviewInput(input domain.ReviewInput) *domain.ValidationError {
	if input.Rating < 1 || input.Rating > 5 {
		return &domain.ValidationError{Rule: domain.RuleReviewFields, Message: "rating must be between 1 and 5"}
	}
	if strings.TrimSpace(input.Comment) == "" {
		return &domain.ValidationError{Rule: domain.RuleReviewFields, Message: "a comment is required"}
	}
	return nil
}
