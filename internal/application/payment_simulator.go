package application

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// PaymentState is one phase of the simulated payment flow.
type PaymentState string

const (
	PaymentStateIdle              PaymentState = "idle"
	PaymentStateCollectingDetails PaymentState = "collecting_details"
	PaymentStateProcessing        PaymentState = "processing"
	PaymentStateSucceeded         PaymentState = "succeeded"
	PaymentStateFailed            PaymentState = "failed"
	PaymentStateCancelled         PaymentState = "cancelled"
)

// OutcomeStrategy decides whether a processed payment succeeds. Injecting it
// keeps the simulator deterministic under test.
type OutcomeStrategy interface {
	// Decide returns true when the payment should succeed
	Decide() bool
}

// RandomOutcome draws success with a fixed probability. The draw is
// deliberately unseeded; the gateway stand-in is nondeterministic by design.
type RandomOutcome struct {
	SuccessRate float64
}

func (r RandomOutcome) Decide() bool {
	return rand.Float64() < r.SuccessRate
}

// PaymentDetails carries the method-specific fields collected from the guest.
type PaymentDetails struct {
	UPIID      string `json:"upiId"`
	CardNumber string `json:"cardNumber"`
	CardHolder string `json:"cardHolder"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

var (
	upiRegex    = regexp.MustCompile(`^[a-zA-Z0-9._\-]+@[a-zA-Z]{2,}$`)
	cardRegex   = regexp.MustCompile(`^\d{16}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex    = regexp.MustCompile(`^\d{3}$`)
)

// PaymentSimulator is a stand-in payment processor used for non-cash methods.
// It walks idle → collecting_details → processing → {succeeded, failed,
// cancelled}; a detail-validation failure keeps it collecting.
type PaymentSimulator struct {
	method          domain.PaymentMethod
	strategy        OutcomeStrategy
	processingDelay time.Duration
	successDelay    time.Duration
	state           PaymentState
	details         PaymentDetails
}

// NewPaymentSimulator creates a simulator for one payment attempt. Cash never
// enters the payment flow and is rejected here.
func NewPaymentSimulator(method domain.PaymentMethod, strategy OutcomeStrategy, processingDelay, successDelay time.Duration) (*PaymentSimulator, error) {
	if !method.IsOnline() {
		return nil, fmt.Errorf("payment method %q does not go through the payment gateway", method)
	}
	if strategy == nil {
		strategy = RandomOutcome{SuccessRate: 0.9}
	}

	return &PaymentSimulator{
		method:          method,
		strategy:        strategy,
		processingDelay: processingDelay,
		successDelay:    successDelay,
		state:           PaymentStateIdle,
	}, nil
}

// State returns the simulator's current phase.
func (p *PaymentSimulator) State() PaymentState {
	return p.state
}

// Begin opens the detail-collection form.
func (p *PaymentSimulator) Begin() error {
	if p.state != PaymentStateIdle {
		return fmt.Errorf("payment already started (state %s)", p.state)
	}
	p.state = PaymentStateCollectingDetails
	return nil
}

// SubmitDetails validates the method-specific fields. A validation failure
// keeps the state at collecting_details so the guest can correct and resubmit.
func (p *PaymentSimulator) SubmitDetails(details PaymentDetails) error {
	if p.state != PaymentStateCollectingDetails {
		return fmt.Errorf("payment details cannot be submitted in state %s", p.state)
	}

	if err := validatePaymentDetails(p.method, details); err != nil {
		return err
	}

	p.details = details
	p.state = PaymentStateProcessing
	return nil
}

// Process simulates the gateway round trip and draws the outcome. A success
// holds the succeeded state for a short extra delay so the caller can show a
// confirmation animation before committing. Context cancellation mid-flight
// maps to the cancelled state.
func (p *PaymentSimulator) Process(ctx context.Context) error {
	if p.state != PaymentStateProcessing {
		return fmt.Errorf("payment cannot be processed in state %s", p.state)
	}

	if err := sleepCtx(ctx, p.processingDelay); err != nil {
		p.state = PaymentStateCancelled
		return &domain.PaymentCancelledError{}
	}

	if !p.strategy.Decide() {
		p.state = PaymentStateFailed
		return &domain.PaymentFailedError{Message: "the payment was declined by the gateway, please try again"}
	}

	if err := sleepCtx(ctx, p.successDelay); err != nil {
		p.state = PaymentStateCancelled
		return &domain.PaymentCancelledError{}
	}

	p.state = PaymentStateSucceeded
	return nil
}

// Retry returns a failed payment to detail collection.
func (p *PaymentSimulator) Retry() error {
	if p.state != PaymentStateFailed {
		return fmt.Errorf("only a failed payment can be retried (state %s)", p.state)
	}
	p.state = PaymentStateCollectingDetails
	return nil
}

// Cancel aborts the payment attempt. It is legal from any non-terminal state
// and discards the collected details; a completed payment cannot be undone.
func (p *PaymentSimulator) Cancel() error {
	switch p.state {
	case PaymentStateSucceeded:
		return fmt.Errorf("a completed payment cannot be cancelled")
	case PaymentStateCancelled:
		return nil
	}
	p.details = PaymentDetails{}
	p.state = PaymentStateCancelled
	return nil
}

// validatePaymentDetails checks the fields the selected method requires.
func validatePaymentDetails(method domain.PaymentMethod, details PaymentDetails) *domain.ValidationError {
	switch method {
	case domain.PaymentMethodUPI:
		if !upiRegex.MatchString(strings.TrimSpace(details.UPIID)) {
			return &domain.ValidationError{Rule: domain.RulePaymentDetails, Message: "enter a valid UPI id in the form name@provider"}
		}
	case domain.PaymentMethodCard:
		number := strings.ReplaceAll(details.CardNumber, " ", "")
		if !cardRegex.MatchString(number) {
			return &domain.ValidationError{Rule: domain.RulePaymentDetails, Message: "card number must have 16 digits"}
		}
		if strings.TrimSpace(details.CardHolder) == "" {
			return &domain.ValidationError{Rule: domain.RulePaymentDetails, Message: "card holder name is required"}
		}
		if !expiryRegex.MatchString(strings.TrimSpace(details.Expiry)) {
			return &domain.ValidationError{Rule: domain.RulePaymentDetails, Message: "expiry must be in MM/YY format"}
		}
		if !cvvRegex.MatchString(strings.TrimSpace(details.CVV)) {
			return &domain.ValidationError{Rule: domain.RulePaymentDetails, Message: "CVV must have 3 digits"}
		}
	}
	return nil
}

// sleepCtx waits for the duration or until the context is done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
