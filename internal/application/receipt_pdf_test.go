package application

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

func TestBuildReceiptPDF(t *testing.T) {
	receipt := &domain.ReceiptSnapshot{
		ID:             "rcpt-1",
		BookingID:      "bk-100",
		CustomerName:   "Ana Torres",
		CheckInDate:    time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC),
		DurationNights: 3,
		NightlyRate:    1000,
		TotalAmount:    3000,
		PaidAmount:     300,
		PaymentMethod:  domain.PaymentMethodCash,
		Guests: []domain.GuestRecord{
			{FirstName: "Ana", LastName: "Torres", IsPrimary: true},
			{FirstName: "Luis", LastName: "Rojas"},
		},
		CreatedAt: time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
	}

	pdf, filename, err := BuildReceiptPDF(receipt)

	require.NoError(t, err)
	assert.Equal(t, "RECEIPT_bk-100.pdf", filename)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must be a PDF document")
}
