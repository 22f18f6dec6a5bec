package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_submissions_total",
		Help: "Booking submission attempts by result.",
	}, []string{"result"})

	paymentOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_payment_outcomes_total",
		Help: "Simulated payment outcomes by state.",
	}, []string{"outcome"})

	receiptDownloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_receipt_downloads_total",
		Help: "Receipt PDF downloads.",
	})
)

// CountReceiptDownload records one receipt PDF download.
func CountReceiptDownload() {
	receiptDownloadsTotal.Inc()
}
