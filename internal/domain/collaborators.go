package domain

import (
	"context"
	"time"
)

// HotelSummary is one hotel offered in an availability search result.
type HotelSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	NightlyRate float64 `json:"nightlyRate"`
	Capacity    int     `json:"capacity"`
	Rating      float64 `json:"rating"`
}

// AvailabilityResult is the outcome of an availability search.
type AvailabilityResult struct {
	AvailableHotels []HotelSummary `json:"availableHotels"`
	DurationDays    int            `json:"durationDays"`
}

// CreateBookingRequest carries the full committed draft to the booking
// platform. The idempotency key lets the platform deduplicate a retried
// commit; this service never retries automatically on ambiguous failure.
type CreateBookingRequest struct {
	IdempotencyKey string        `json:"idempotencyKey"`
	CustomerName   string        `json:"customerName"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	HotelID        string        `json:"hotelId"`
	RoomID         string        `json:"roomId"`
	CheckInDate    time.Time     `json:"checkInDate"`
	CheckOutDate   time.Time     `json:"checkOutDate"`
	OccupancyCount int           `json:"occupancyCount"`
	AmountPaid     float64       `json:"amountPaid"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	OnlinePaid     bool          `json:"onlinePaid"`
	Guests         []GuestRecord `json:"guests"`
}

// GuestDirectory looks up guests previously associated with the account, for
// roster autofill. The bearer credential is passed explicitly on every call.
type GuestDirectory interface {
	// SearchKnownGuests returns the account's known guests
	SearchKnownGuests(ctx context.Context, credential string) ([]KnownGuest, error)
}

// AvailabilitySearch queries the booking platform for available hotels.
type AvailabilitySearch interface {
	// SearchAvailability returns hotels available for the given stay
	SearchAvailability(ctx context.Context, credential, city string, checkIn, checkOut time.Time, occupancy int) (*AvailabilityResult, error)
}

// BookingService is the external booking platform. Bookings are created and
// mutated there; this service only orchestrates the calls.
type BookingService interface {
	// CreateBooking commits a draft and returns the new booking id
	CreateBooking(ctx context.Context, credential string, req *CreateBookingRequest) (string, error)
	// FetchBooking returns the booking with its current status
	FetchBooking(ctx context.Context, credential, id string) (*Booking, error)
	// UpdateBookingContact updates the booking's contact fields
	UpdateBookingContact(ctx context.Context, credential, id string, contact ContactFields) error
	// CancelBooking cancels the booking
	CancelBooking(ctx context.Context, credential, id string) error
}

// ReviewService manages the single review a booking may carry.
type ReviewService interface {
	// FetchReview returns the booking's review, or nil when none exists
	FetchReview(ctx context.Context, credential, bookingID string) (*Review, error)
	// CreateReview creates the booking's review
	CreateReview(ctx context.Context, credential, bookingID string, input ReviewInput) (*Review, error)
	// UpdateReview updates an existing review
	UpdateReview(ctx context.Context, credential, reviewID string, input ReviewInput) (*Review, error)
	// DeleteReview deletes an existing review
	DeleteReview(ctx context.Context, credential, reviewID string) error
}
