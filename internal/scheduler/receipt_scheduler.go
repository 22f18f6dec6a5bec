package scheduler

import (
	"log"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// ReceiptRetentionScheduler purges stored receipts past the retention period.
type ReceiptRetentionScheduler struct {
	receiptRepo domain.ReceiptRepository
	retention   time.Duration
	ticker      *time.Ticker
}

// NewReceiptRetentionScheduler creates a new retention scheduler.
func NewReceiptRetentionScheduler(receiptRepo domain.ReceiptRepository, retention time.Duration) *ReceiptRetentionScheduler {
	return &ReceiptRetentionScheduler{
		receiptRepo: receiptRepo,
		retention:   retention,
	}
}

// Start runs an initial purge and then schedules one shortly after midnight
// every day.
func (s *ReceiptRetentionScheduler) Start() {
	log.Println("Receipt retention scheduler started - runs every 24 hours")

	s.PurgeExpiredReceipts()

	now := time.Now()
	nextRun := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 1, 0, 0, now.Location())
	durationUntilNextRun := time.Until(nextRun)

	log.Printf("Next receipt purge scheduled at: %s", nextRun.Format("2006-01-02 15:04:05"))

	time.AfterFunc(durationUntilNextRun, func() {
		s.PurgeExpiredReceipts()

		s.ticker = time.NewTicker(24 * time.Hour)
		go func() {
			for range s.ticker.C {
				s.PurgeExpiredReceipts()
			}
		}()
	})
}

// Stop stops the scheduler.
func (s *ReceiptRetentionScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
		log.Println("Receipt retention scheduler stopped")
	}
}

// PurgeExpiredReceipts removes receipts older than the retention period.
func (s *ReceiptRetentionScheduler) PurgeExpiredReceipts() {
	cutoff := time.Now().Add(-s.retention)

	purged, err := s.receiptRepo.DeleteOlderThan(cutoff)
	if err != nil {
		log.Printf("Error purging expired receipts: %v", err)
		return
	}

	if purged > 0 {
		log.Printf("Purged %d expired receipts", purged)
	}
}
