package application

import (
	"testing"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

func TestContactAndCancelGates(t *testing.T) {
	tests := []struct {
		status    domain.BookingStatus
		canEdit   bool
		canCancel bool
	}{
		{domain.BookingPending, true, true},
		{domain.BookingActive, true, true},
		{domain.BookingCheckIn, false, false},
		{domain.BookingCheckout, false, false},
		{domain.BookingCancelled, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := CanEditContactInfo(tt.status); got != tt.canEdit {
				t.Errorf("CanEditContactInfo(%s) = %v, want %v", tt.status, got, tt.canEdit)
			}
			if got := CanCancel(tt.status); got != tt.canCancel {
				t.Errorf("CanCancel(%s) = %v, want %v", tt.status, got, tt.canCancel)
			}
		})
	}
}

func TestCanReview(t *testing.T) {
	tests := []struct {
		name     string
		booking  domain.Booking
		expected bool
	}{
		{"confirmed and checked out", domain.Booking{ConfirmBooking: true, Status: domain.BookingCheckout}, true},
		{"checked out but never confirmed", domain.Booking{ConfirmBooking: false, Status: domain.BookingCheckout}, false},
		{"confirmed but still checked in", domain.Booking{ConfirmBooking: true, Status: domain.BookingCheckIn}, false},
		{"confirmed but cancelled", domain.Booking{ConfirmBooking: true, Status: domain.BookingCancelled}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReview(&tt.booking); got != tt.expected {
				t.Errorf("CanReview() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestReviewActions(t *testing.T) {
	reviewable := &domain.Booking{ConfirmBooking: true, Status: domain.BookingCheckout}
	notReviewable := &domain.Booking{Status: domain.BookingActive}
	existing := &domain.Review{ID: "rev-1"}

	actions := ReviewActions(reviewable, nil)
	if len(actions) != 1 || actions[0] != ReviewActionCreate {
		t.Errorf("expected [create], got %v", actions)
	}

	actions = ReviewActions(reviewable, existing)
	if len(actions) != 2 || actions[0] != ReviewActionEdit || actions[1] != ReviewActionDelete {
		t.Errorf("expected [edit delete], got %v", actions)
	}

	// An existing review stays editable even after the status moved on.
	actions = ReviewActions(notReviewable, existing)
	if len(actions) != 2 {
		t.Errorf("expected [edit delete] regardless of status, got %v", actions)
	}

	if actions = ReviewActions(notReviewable, nil); actions != nil {
		t.Errorf("expected no actions, got %v", actions)
	}
}
