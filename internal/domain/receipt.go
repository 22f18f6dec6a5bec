package domain

import "time"

// ReceiptSnapshot is an immutable copy of the booking totals, dates and guest
// list captured at commit time. It is kept independent of the live form state
// so it survives the post-submission draft reset.
type ReceiptSnapshot struct {
	ID             string        `json:"id"`
	BookingID      string        `json:"bookingId"`
	CustomerName   string        `json:"customerName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	HotelID        string        `json:"hotelId"`
	RoomID         string        `json:"roomId"`
	CheckInDate    time.Time     `json:"checkInDate"`
	CheckOutDate   time.Time     `json:"checkOutDate"`
	DurationNights int           `json:"durationNights"`
	NightlyRate    float64       `json:"nightlyRate"`
	TotalAmount    float64       `json:"totalAmount"`
	PaidAmount     float64       `json:"paidAmount"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Guests         []GuestRecord `json:"guests"`
	CreatedAt      time.Time     `json:"createdAt"`
}

// ReceiptRepository defines the operations on stored receipts.
type ReceiptRepository interface {
	// Create stores a new receipt snapshot
	Create(receipt *ReceiptSnapshot) error
	// GetByID fetches a receipt by its id
	GetByID(id string) (*ReceiptSnapshot, error)
	// GetByBookingID fetches the receipt captured for a booking
	GetByBookingID(bookingID string) (*ReceiptSnapshot, error)
	// DeleteOlderThan removes receipts created strictly before the cutoff
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
