package application

import (
	"math"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// advanceRate is the portion of the total amount due at booking time.
const advanceRate = 0.10

// ComputeDuration returns the stay length in whole nights, ceiling-rounded.
// It returns 0 when either date is missing or the check-out does not fall
// strictly after the check-in.
func ComputeDuration(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// ComputeQuote derives the price figures for a stay. Pure; safe to call on
// every input change. A zero duration yields a zero total and zero advance,
// which the validator rejects separately.
func ComputeQuote(checkIn, checkOut time.Time, nightlyRate float64) domain.PriceQuote {
	duration := ComputeDuration(checkIn, checkOut)
	total := float64(duration) * nightlyRate

	return domain.PriceQuote{
		DurationNights: duration,
		NightlyRate:    nightlyRate,
		TotalAmount:    total,
		MinimumAdvance: advanceRate * total,
	}
}

// QuoteForDraft computes the quote from the draft's own dates and rate.
func QuoteForDraft(draft *domain.BookingDraft) domain.PriceQuote {
	return ComputeQuote(draft.CheckInDate, draft.CheckOutDate, draft.NightlyRate)
}
