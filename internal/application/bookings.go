package application

import (
	"context"
	"fmt"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// BookingView is a booking together with the guest actions currently offered
// on it. The capability flags are computed from the booking as just fetched;
// they are never cached between renders.
type BookingView struct {
	Booking            *domain.Booking `json:"booking"`
	DueAmount          float64         `json:"dueAmount"`
	CanEditContactInfo bool            `json:"canEditContactInfo"`
	CanCancel          bool            `json:"canCancel"`
	CanReview          bool            `json:"canReview"`
	Review             *domain.Review  `json:"review,omitempty"`
	ReviewActions      []ReviewAction  `json:"reviewActions,omitempty"`
}

// BookingActionsService gates the post-creation booking mutations on the
// booking's current status.
type BookingActionsService struct {
	bookings domain.BookingService
	reviews  domain.ReviewService
}

// NewBookingActionsService creates a new booking actions service.
func NewBookingActionsService(bookings domain.BookingService, reviews domain.ReviewService) *BookingActionsService {
	return &BookingActionsService{
		bookings: bookings,
		reviews:  reviews,
	}
}

// GetBookingView fetches the booking and its review and computes the offered
// actions fresh from that state.
func (s *BookingActionsService) GetBookingView(ctx context.Context, credential, id string) (*BookingView, error) {
	if credential == "" {
		return nil, &domain.AuthorizationError{}
	}

	booking, err := s.bookings.FetchBooking(ctx, credential, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}

	var review *domain.Review
	if s.reviews != nil {
		review, err = s.reviews.FetchReview(ctx, credential, id)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch review: %w", err)
		}
	}

	return &BookingView{
		Booking:            booking,
		DueAmount:          booking.DueAmount(),
		CanEditContactInfo: CanEditContactInfo(booking.Status),
		CanCancel:          CanCancel(booking.Status),
		CanReview:          CanReview(booking),
		Review:             review,
		ReviewActions:      ReviewActions(booking, review),
	}, nil
}

// UpdateContact changes the booking's contact fields. The booking is
// re-fetched first so the gate runs against its latest status.
func (s *BookingActionsService) UpdateContact(ctx context.Context, credential, id string, contact domain.ContactFields) error {
	if credential == "" {
		return &domain.AuthorizationError{}
	}

	booking, err := s.bookings.FetchBooking(ctx, credential, id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !CanEditContactInfo(booking.Status) {
		return fmt.Errorf("contact details can no longer be changed on a %s booking", booking.Status)
	}

	return s.bookings.UpdateBookingContact(ctx, credential, id, contact)
}

// Cancel cancels the booking after checking its latest status allows it.
func (s *BookingActionsService) Cancel(ctx context.Context, credential, id string) error {
	if credential == "" {
		return &domain.AuthorizationError{}
	}

	booking, err := s.bookings.FetchBooking(ctx, credential, id)
	if err != nil {
		return fmt.Errorf("failed to fetch booking: %w", err)
	}

	if !CanCancel(booking.Status) {
		return fmt.Errorf("a %s booking cannot be cancelled", booking.Status)
	}

	return s.bookings.CancelBooking(ctx, credential, id)
}
