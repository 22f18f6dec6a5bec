package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingActive    BookingStatus = "active"
	BookingCheckIn   BookingStatus = "check-in"
	BookingCheckout  BookingStatus = "checkout"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodUPI  PaymentMethod = "UPI"
	PaymentMethodCard PaymentMethod = "Card"
)

// IsOnline reports whether the method goes through the payment gateway.
// Cash is settled at the property and skips payment entirely.
func (m PaymentMethod) IsOnline() bool {
	return m == PaymentMethodUPI || m == PaymentMethodCard
}

// Booking represents a committed booking as held by the external booking
// platform. Status transitions are owned by the platform; this service only
// reads the booking and gates guest actions on its current status.
type Booking struct {
	ID             string        `json:"id"`
	Status         BookingStatus `json:"status"`
	ConfirmBooking bool          `json:"confirmBooking"`
	CustomerName   string        `json:"customerName"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	HotelID        string        `json:"hotelId"`
	RoomID         string        `json:"roomId"`
	CheckInDate    time.Time     `json:"checkInDate"`
	CheckOutDate   time.Time     `json:"checkOutDate"`
	TotalAmount    float64       `json:"totalAmount"`
	PaidAmount     float64       `json:"paidAmount"`
	Guests         []GuestRecord `json:"guests,omitempty"`
}

// DueAmount returns the balance still owed on the booking.
func (b *Booking) DueAmount() float64 {
	return b.TotalAmount - b.PaidAmount
}
