package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

func TestGetBookingViewPending(t *testing.T) {
	bookings := &fakeBookingService{booking: &domain.Booking{
		ID:          "bk-1",
		Status:      domain.BookingPending,
		TotalAmount: 3000,
		PaidAmount:  300,
	}}
	svc := NewBookingActionsService(bookings, &fakeReviewService{})

	view, err := svc.GetBookingView(context.Background(), "token", "bk-1")

	require.NoError(t, err)
	assert.Equal(t, 2700.0, view.DueAmount)
	assert.True(t, view.CanEditContactInfo)
	assert.True(t, view.CanCancel)
	assert.False(t, view.CanReview)
	assert.Nil(t, view.Review)
	assert.Nil(t, view.ReviewActions)
}

func TestGetBookingViewCheckedOutWithReview(t *testing.T) {
	bookings := &fakeBookingService{booking: &domain.Booking{
		ID:             "bk-1",
		Status:         domain.BookingCheckout,
		ConfirmBooking: true,
	}}
	reviews := &fakeReviewService{review: &domain.Review{ID: "rev-1", BookingID: "bk-1"}}
	svc := NewBookingActionsService(bookings, reviews)

	view, err := svc.GetBookingView(context.Background(), "token", "bk-1")

	require.NoError(t, err)
	assert.False(t, view.CanCancel)
	assert.True(t, view.CanReview)
	require.NotNil(t, view.Review)
	assert.Equal(t, []ReviewAction{ReviewActionEdit, ReviewActionDelete}, view.ReviewActions)
}

func TestGetBookingViewRequiresCredential(t *testing.T) {
	svc := NewBookingActionsService(&fakeBookingService{}, &fakeReviewService{})

	_, err := svc.GetBookingView(context.Background(), "", "bk-1")

	var authErr *domain.AuthorizationError
	assert.True(t, errors.As(err, &authErr))
}

func TestUpdateContactGatedOnStatus(t *testing.T) {
	bookings := &fakeBookingService{booking: &domain.Booking{ID: "bk-1", Status: domain.BookingCheckIn}}
	svc := NewBookingActionsService(bookings, &fakeReviewService{})

	err := svc.UpdateContact(context.Background(), "token", "bk-1", domain.ContactFields{Name: "Ana"})

	assert.Error(t, err)
	assert.Empty(t, bookings.contactUpdates)
}

func TestUpdateContactOnActiveBooking(t *testing.T) {
	bookings := &fakeBookingService{booking: &domain.Booking{ID: "bk-1", Status: domain.BookingActive}}
	svc := NewBookingActionsService(bookings, &fakeReviewService{})

	contact := domain.ContactFields{Name: "Ana Torres", Phone: "999", Email: "ana@example.com"}
	require.NoError(t, svc.UpdateContact(context.Background(), "token", "bk-1", contact))

	require.Len(t, bookings.contactUpdates, 1)
	assert.Equal(t, contact, bookings.contactUpdates[0])
}

func TestCancelGatedOnStatus(t *testing.T) {
	tests := []struct {
		status  domain.BookingStatus
		allowed bool
	}{
		{domain.BookingPending, true},
		{domain.BookingActive, true},
		{domain.BookingCheckIn, false},
		{domain.BookingCheckout, false},
		{domain.BookingCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			bookings := &fakeBookingService{booking: &domain.Booking{ID: "bk-1", Status: tt.status}}
			svc := NewBookingActionsService(bookings, &fakeReviewService{})

			err := svc.Cancel(context.Background(), "token", "bk-1")

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, []string{"bk-1"}, bookings.cancelled)
			} else {
				assert.Error(t, err)
				assert.Empty(t, bookings.cancelled)
			}
		})
	}
}

func TestCancelFetchFailurePropagates(t *testing.T) {
	bookings := &fakeBookingService{fetchErr: &domain.RemoteError{StatusCode: 404, Message: "not found"}}
	svc := NewBookingActionsService(bookings, &fakeReviewService{})

	err := svc.Cancel(context.Background(), "token", "bk-1")

	var remote *domain.RemoteError
	assert.True(t, errors.As(err, &remote))
	assert.Empty(t, bookings.cancelled)
}
