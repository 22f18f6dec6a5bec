package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// submittableDraft builds a draft that passes every validation rule:
// 3 nights at 1000 per night, advance of 300 paid.
func submittableDraft() *domain.BookingDraft {
	draft := domain.NewBookingDraft()
	draft.CustomerName = "Ana Torres"
	draft.Phone = "999111222"
	draft.Email = "ana@example.com"
	draft.HotelID = "hotel-1"
	draft.RoomID = "room-12"
	draft.CheckInDate = date(2026, 3, 10)
	draft.CheckOutDate = date(2026, 3, 13)
	draft.NightlyRate = 1000
	draft.AmountPaidNow = 300
	draft.Guests[0] = domain.GuestRecord{
		FirstName: "Ana",
		LastName:  "Torres",
		Gender:    "F",
		Age:       "34",
		Phone:     "999111222",
		Email:     "ana@example.com",
		IsPrimary: true,
	}
	return draft
}

func validate(draft *domain.BookingDraft) *domain.ValidationError {
	return ValidateBookingDraft(draft, QuoteForDraft(draft))
}

func TestValidateBookingDraftAccepts(t *testing.T) {
	assert.Nil(t, validate(submittableDraft()))
}

func TestValidateBookingDraftRuleOrder(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *domain.BookingDraft)
		expected domain.ValidationRule
	}{
		{"missing customer name", func(d *domain.BookingDraft) { d.CustomerName = "  " }, domain.RuleContactFields},
		{"missing phone", func(d *domain.BookingDraft) { d.Phone = "" }, domain.RuleContactFields},
		{"bad email", func(d *domain.BookingDraft) { d.Email = "not-an-email" }, domain.RuleContactFields},
		{"missing dates", func(d *domain.BookingDraft) { d.CheckInDate, d.CheckOutDate = time.Time{}, time.Time{} }, domain.RuleDateOrder},
		{"inverted dates", func(d *domain.BookingDraft) { d.CheckInDate, d.CheckOutDate = d.CheckOutDate, d.CheckInDate }, domain.RuleDateOrder},
		{"zero occupancy", func(d *domain.BookingDraft) { d.OccupancyCount = 0 }, domain.RuleOccupancy},
		{"negative payment", func(d *domain.BookingDraft) { d.AmountPaidNow = -1 }, domain.RulePaymentBounds},
		{"overpayment", func(d *domain.BookingDraft) { d.AmountPaidNow = 3000.01 }, domain.RulePaymentBounds},
		{"advance below minimum", func(d *domain.BookingDraft) { d.AmountPaidNow = 250 }, domain.RuleMinimumAdvance},
		{"roster shorter than occupancy", func(d *domain.BookingDraft) { d.OccupancyCount = 2 }, domain.RuleRosterSize},
		{"guest missing first name", func(d *domain.BookingDraft) { d.Guests[0].FirstName = "" }, domain.RuleGuestFields},
		{"guest age not numeric", func(d *domain.BookingDraft) { d.Guests[0].Age = "thirty" }, domain.RuleGuestFields},
		{"guest bad email", func(d *domain.BookingDraft) { d.Guests[0].Email = "nope@" }, domain.RuleGuestFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := submittableDraft()
			tt.mutate(draft)

			err := validate(draft)
			require.NotNil(t, err)
			assert.Equal(t, tt.expected, err.Rule)
			assert.NotEmpty(t, err.Message)
		})
	}
}

func TestValidateBookingDraftFirstViolationWins(t *testing.T) {
	// Contact fields are rule 1 and must be reported even when later rules
	// are violated too.
	draft := submittableDraft()
	draft.CustomerName = ""
	draft.AmountPaidNow = -5

	err := validate(draft)
	require.NotNil(t, err)
	assert.Equal(t, domain.RuleContactFields, err.Rule)
}

func TestValidateBookingDraftAdvanceBoundary(t *testing.T) {
	// Exactly the minimum advance is accepted.
	draft := submittableDraft()
	draft.AmountPaidNow = 300
	assert.Nil(t, validate(draft))

	// Full payment up front is accepted too.
	draft.AmountPaidNow = 3000
	assert.Nil(t, validate(draft))
}

func TestValidateBookingDraftSecondGuestChecked(t *testing.T) {
	draft := submittableDraft()
	ResizeRoster(draft, 2)

	err := validate(draft)
	require.NotNil(t, err)
	assert.Equal(t, domain.RuleGuestFields, err.Rule)
	assert.Contains(t, err.Message, "guest 2")
}
