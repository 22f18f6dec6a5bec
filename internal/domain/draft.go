package domain

import "time"

// ContactFields are the booking's top-level contact fields, derived from the
// primary guest whenever that guest changes.
type ContactFields struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingDraft is the in-progress booking form state. The guests slice is
// kept in lockstep with OccupancyCount, and exactly one guest, always at
// position 0, carries IsPrimary.
type BookingDraft struct {
	CustomerName   string        `json:"customerName"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	HotelID        string        `json:"hotelId"`
	RoomID         string        `json:"roomId"`
	CheckInDate    time.Time     `json:"checkInDate"`
	CheckOutDate   time.Time     `json:"checkOutDate"`
	OccupancyCount int           `json:"occupancyCount"`
	NightlyRate    float64       `json:"nightlyRate"`
	AmountPaidNow  float64       `json:"amountPaidNow"`
	PaymentMethod  PaymentMethod `json:"paymentMethod"`
	Guests         []GuestRecord `json:"guests"`
}

// NewBookingDraft returns a blank draft for a single guest. The lone guest
// slot is the primary one.
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		OccupancyCount: 1,
		PaymentMethod:  PaymentMethodCash,
		Guests:         []GuestRecord{{IsPrimary: true}},
	}
}

// Reset returns the draft to blank defaults, discarding all entered data.
func (d *BookingDraft) Reset() {
	*d = *NewBookingDraft()
}
