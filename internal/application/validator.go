package application

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// emailRegex matches a standard local@domain.tld address.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateBookingDraft checks the aggregate submission before any network
// call. It fails closed: rules run in a fixed order and the first violation
// aborts with its user-displayable message. A nil return means the draft may
// be submitted.
func ValidateBookingDraft(draft *domain.BookingDraft, quote domain.PriceQuote) *domain.ValidationError {
	// 1. Top-level contact fields
	if strings.TrimSpace(draft.CustomerName) == "" {
		return &domain.ValidationError{Rule: domain.RuleContactFields, Message: "customer name is required"}
	}
	if strings.TrimSpace(draft.Phone) == "" {
		return &domain.ValidationError{Rule: domain.RuleContactFields, Message: "contact phone number is required"}
	}
	if strings.TrimSpace(draft.Email) == "" {
		return &domain.ValidationError{Rule: domain.RuleContactFields, Message: "contact email is required"}
	}
	if !emailRegex.MatchString(draft.Email) {
		return &domain.ValidationError{Rule: domain.RuleContactFields, Message: fmt.Sprintf("the email '%s' is not valid", draft.Email)}
	}

	// 2. Date ordering
	if draft.CheckInDate.IsZero() || draft.CheckOutDate.IsZero() {
		return &domain.ValidationError{Rule: domain.RuleDateOrder, Message: "check-in and check-out dates are required"}
	}
	if !draft.CheckOutDate.After(draft.CheckInDate) {
		return &domain.ValidationError{Rule: domain.RuleDateOrder, Message: "check-out date must be after the check-in date"}
	}

	// 3. Computed duration
	if quote.DurationNights <= 0 {
		return &domain.ValidationError{Rule: domain.RuleDuration, Message: "the stay must cover at least one night"}
	}

	// 4. Occupancy
	if draft.OccupancyCount < 1 {
		return &domain.ValidationError{Rule: domain.RuleOccupancy, Message: "at least one guest is required"}
	}

	// 5. Payment amount bounds
	if draft.AmountPaidNow < 0 {
		return &domain.ValidationError{Rule: domain.RulePaymentBounds, Message: "the amount paid cannot be negative"}
	}
	if draft.AmountPaidNow > quote.TotalAmount {
		return &domain.ValidationError{Rule: domain.RulePaymentBounds, Message: fmt.Sprintf("the amount paid cannot exceed the total of %.2f", quote.TotalAmount)}
	}

	// 6. Minimum advance
	if draft.AmountPaidNow < quote.MinimumAdvance {
		return &domain.ValidationError{Rule: domain.RuleMinimumAdvance, Message: fmt.Sprintf("a minimum advance payment of %.2f is required", quote.MinimumAdvance)}
	}

	// 7. Roster length
	if len(draft.Guests) != draft.OccupancyCount {
		return &domain.ValidationError{Rule: domain.RuleRosterSize, Message: "guest details are incomplete for the selected occupancy"}
	}

	// 8. Per-guest required fields
	for i, guest := range draft.Guests {
		if err := validateGuest(i, guest); err != nil {
			return err
		}
	}

	return nil
}

func validateGuest(index int, guest domain.GuestRecord) *domain.ValidationError {
	label := fmt.Sprintf("guest %d", index+1)

	if strings.TrimSpace(guest.FirstName) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("first name is required for %s", label)}
	}
	if strings.TrimSpace(guest.LastName) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("last name is required for %s", label)}
	}
	if strings.TrimSpace(guest.Gender) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("gender is required for %s", label)}
	}
	if strings.TrimSpace(guest.Phone) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("phone number is required for %s", label)}
	}
	if strings.TrimSpace(guest.Age) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("age is required for %s", label)}
	}
	if _, err := strconv.Atoi(strings.TrimSpace(guest.Age)); err != nil {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("age must be a number for %s", label)}
	}
	if strings.TrimSpace(guest.Email) == "" {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("email is required for %s", label)}
	}
	if !emailRegex.MatchString(guest.Email) {
		return &domain.ValidationError{Rule: domain.RuleGuestFields, Message: fmt.Sprintf("the email '%s' of %s is not valid", guest.Email, label)}
	}

	return nil
}
