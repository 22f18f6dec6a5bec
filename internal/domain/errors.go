package domain

import "fmt"

// ValidationRule identifies which submission rule a draft violated. Each rule
// maps to one inline, user-displayable message.
type ValidationRule string

const (
	RuleContactFields  ValidationRule = "contact_fields"
	RuleDateOrder      ValidationRule = "date_order"
	RuleDuration       ValidationRule = "duration"
	RuleOccupancy      ValidationRule = "occupancy"
	RulePaymentBounds  ValidationRule = "payment_bounds"
	RuleMinimumAdvance ValidationRule = "minimum_advance"
	RuleRosterSize     ValidationRule = "roster_size"
	RuleGuestFields    ValidationRule = "guest_fields"
	RulePaymentDetails ValidationRule = "payment_details"
	RuleReviewFields   ValidationRule = "review_fields"
)

// ValidationError is a client-side rejection. It never reaches the network
// and blocks submission until the field is corrected.
type ValidationError struct {
	Rule    ValidationRule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthorizationError means no bearer credential was present for an operation
// that requires one. No collaborator call is attempted.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	if e.Message == "" {
		return "missing session credential, please sign in again"
	}
	return e.Message
}

// PaymentFailedError means the gateway rejected the payment. The booking is
// never created and the guest may retry from the payment form.
type PaymentFailedError struct {
	Message string
}

func (e *PaymentFailedError) Error() string {
	if e.Message == "" {
		return "payment failed, please try again"
	}
	return e.Message
}

// PaymentCancelledError means the guest aborted the payment step. It is
// informational rather than an error banner; the booking is never created.
type PaymentCancelledError struct{}

func (e *PaymentCancelledError) Error() string {
	return "payment was cancelled"
}

// RemoteError wraps a failure from an external collaborator call. The server
// message is surfaced verbatim when present.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("the booking service returned status %d", e.StatusCode)
}
