package application

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// ConfirmationMailer sends the post-commit confirmation email. Sending is
// best effort; a mail failure never fails the booking.
type ConfirmationMailer interface {
	// SendBookingConfirmation mails the receipt to the booking contact
	SendBookingConfirmation(receipt *domain.ReceiptSnapshot) error
}

// BookingSubmissionOrchestrator sequences validation, the optional simulated
// payment and the booking-creation call, and captures the receipt snapshot on
// success.
type BookingSubmissionOrchestrator struct {
	bookings        domain.BookingService
	receipts        domain.ReceiptRepository
	mailer          ConfirmationMailer
	strategy        OutcomeStrategy
	processingDelay time.Duration
	successDelay    time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewBookingSubmissionOrchestrator creates a new orchestrator. The receipt
// repository and mailer may be nil; the orchestrator then skips persistence
// and mail.
func NewBookingSubmissionOrchestrator(
	bookings domain.BookingService,
	receipts domain.ReceiptRepository,
	mailer ConfirmationMailer,
	strategy OutcomeStrategy,
	processingDelay time.Duration,
	successDelay time.Duration,
) *BookingSubmissionOrchestrator {
	return &BookingSubmissionOrchestrator{
		bookings:        bookings,
		receipts:        receipts,
		mailer:          mailer,
		strategy:        strategy,
		processingDelay: processingDelay,
		successDelay:    successDelay,
		inFlight:        make(map[string]bool),
	}
}

// beginSubmission claims the credential's single in-flight slot.
func (o *BookingSubmissionOrchestrator) beginSubmission(credential string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.inFlight[credential] {
		return false
	}
	o.inFlight[credential] = true
	return true
}

// endSubmission releases the credential's in-flight slot.
func (o *BookingSubmissionOrchestrator) endSubmission(credential string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.inFlight, credential)
}

// Submit runs the full submission sequence for one draft:
// validate → (UPI/Card: simulated payment) → create booking → capture receipt
// → reset the draft. Failure at any step halts the sequence and leaves the
// draft untouched. The in-flight guard is scoped per credential: a guest's
// double-click cannot commit twice, while unrelated guests submit freely in
// parallel.
func (o *BookingSubmissionOrchestrator) Submit(ctx context.Context, credential string, draft *domain.BookingDraft, details PaymentDetails) (*domain.ReceiptSnapshot, error) {
	if credential == "" {
		submissionsTotal.WithLabelValues("unauthorized").Inc()
		return nil, &domain.AuthorizationError{}
	}

	if !o.beginSubmission(credential) {
		return nil, fmt.Errorf("a booking submission is already in progress")
	}
	defer o.endSubmission(credential)

	quote := QuoteForDraft(draft)
	if err := ValidateBookingDraft(draft, quote); err != nil {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	if draft.PaymentMethod.IsOnline() {
		if err := o.runPayment(ctx, draft.PaymentMethod, details); err != nil {
			return nil, err
		}
	}

	req := buildCreateRequest(draft, uuid.New().String())
	bookingID, err := o.bookings.CreateBooking(ctx, credential, req)
	if err != nil {
		submissionsTotal.WithLabelValues("remote_error").Inc()
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	receipt := snapshotReceipt(bookingID, draft, quote)

	if o.receipts != nil {
		if err := o.receipts.Create(receipt); err != nil {
			// The booking exists at this point; losing the stored copy of the
			// receipt must not undo it.
			log.Printf("booking %s created but receipt not stored: %v", bookingID, err)
		}
	}

	if o.mailer != nil {
		if err := o.mailer.SendBookingConfirmation(receipt); err != nil {
			log.Printf("failed to send confirmation email for booking %s: %v", bookingID, err)
		}
	}

	draft.Reset()
	submissionsTotal.WithLabelValues("committed").Inc()

	return receipt, nil
}

// runPayment drives a payment simulator to completion for a non-cash method.
func (o *BookingSubmissionOrchestrator) runPayment(ctx context.Context, method domain.PaymentMethod, details PaymentDetails) error {
	sim, err := NewPaymentSimulator(method, o.strategy, o.processingDelay, o.successDelay)
	if err != nil {
		return err
	}

	if err := sim.Begin(); err != nil {
		return err
	}
	if err := sim.SubmitDetails(details); err != nil {
		submissionsTotal.WithLabelValues("rejected").Inc()
		return err
	}
	if err := sim.Process(ctx); err != nil {
		paymentOutcomesTotal.WithLabelValues(string(sim.State())).Inc()
		return err
	}

	paymentOutcomesTotal.WithLabelValues(string(sim.State())).Inc()
	return nil
}

// buildCreateRequest maps the validated draft onto the booking platform's
// creation contract.
func buildCreateRequest(draft *domain.BookingDraft, idempotencyKey string) *domain.CreateBookingRequest {
	guests := make([]domain.GuestRecord, len(draft.Guests))
	copy(guests, draft.Guests)

	return &domain.CreateBookingRequest{
		IdempotencyKey: idempotencyKey,
		CustomerName:   draft.CustomerName,
		Phone:          draft.Phone,
		Email:          draft.Email,
		HotelID:        draft.HotelID,
		RoomID:         draft.RoomID,
		CheckInDate:    draft.CheckInDate,
		CheckOutDate:   draft.CheckOutDate,
		OccupancyCount: draft.OccupancyCount,
		AmountPaid:     draft.AmountPaidNow,
		PaymentMethod:  draft.PaymentMethod,
		OnlinePaid:     draft.PaymentMethod.IsOnline(),
		Guests:         guests,
	}
}

// snapshotReceipt captures the immutable receipt for a committed booking.
// The guest list is copied so the later draft reset cannot touch it.
func snapshotReceipt(bookingID string, draft *domain.BookingDraft, quote domain.PriceQuote) *domain.ReceiptSnapshot {
	guests := make([]domain.GuestRecord, len(draft.Guests))
	copy(guests, draft.Guests)

	return &domain.ReceiptSnapshot{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		CustomerName:   draft.CustomerName,
		Email:          draft.Email,
		Phone:          draft.Phone,
		HotelID:        draft.HotelID,
		RoomID:         draft.RoomID,
		CheckInDate:    draft.CheckInDate,
		CheckOutDate:   draft.CheckOutDate,
		DurationNights: quote.DurationNights,
		NightlyRate:    quote.NightlyRate,
		TotalAmount:    quote.TotalAmount,
		PaidAmount:     draft.AmountPaidNow,
		PaymentMethod:  draft.PaymentMethod,
		Guests:         guests,
		CreatedAt:      time.Now(),
	}
}
