package application

import "github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"

// ReviewAction is a legal guest action on a booking's review.
type ReviewAction string

const (
	ReviewActionCreate ReviewAction = "create"
	ReviewActionEdit   ReviewAction = "edit"
	ReviewActionDelete ReviewAction = "delete"
)

// Booking status transitions are owned by the booking platform. This service
// only answers which guest actions are offered at each status, and always
// from a freshly fetched booking, never a cached one.

// CanEditContactInfo reports whether the booking's contact fields may still
// be changed.
func CanEditContactInfo(status domain.BookingStatus) bool {
	return status == domain.BookingPending || status == domain.BookingActive
}

// CanCancel reports whether the booking may still be cancelled by the guest.
func CanCancel(status domain.BookingStatus) bool {
	return status == domain.BookingPending || status == domain.BookingActive
}

// CanReview reports whether the guest may leave a review: only once the stay
// has checked out and the booking was confirmed.
func CanReview(booking *domain.Booking) bool {
	return booking.ConfirmBooking && booking.Status == domain.BookingCheckout
}

// ReviewActions returns the review actions currently offered. With an
// existing review the guest may only edit or delete it; without one, and only
// while CanReview holds, the single legal action is to create it.
func ReviewActions(booking *domain.Booking, existing *domain.Review) []ReviewAction {
	if existing != nil {
		return []ReviewAction{ReviewActionEdit, ReviewActionDelete}
	}
	if CanReview(booking) {
		return []ReviewAction{ReviewActionCreate}
	}
	return nil
}
