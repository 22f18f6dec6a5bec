package domain

import "time"

// Review represents a guest review of a completed stay. At most one review
// exists per booking.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId"`
	Rating    int       `json:"rating"`
	Title     *string   `json:"title,omitempty"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReviewInput carries the guest-editable review fields.
type ReviewInput struct {
	Rating  int     `json:"rating"`
	Title   *string `json:"title,omitempty"`
	Comment string  `json:"comment"`
}
