package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// GuestField identifies one editable field of a guest record.
type GuestField string

const (
	GuestFieldFirstName GuestField = "firstName"
	GuestFieldLastName  GuestField = "lastName"
	GuestFieldGender    GuestField = "gender"
	GuestFieldAge       GuestField = "age"
	GuestFieldPhone     GuestField = "phone"
	GuestFieldEmail     GuestField = "email"
)

// ResizeRoster grows or shrinks the draft's guest list to match the new
// occupancy count. Growing appends blank non-primary records; shrinking
// truncates from the tail and is destructive. After a truncation the record
// at position 0 is forced primary so the roster never ends up with zero or
// multiple primaries.
func ResizeRoster(draft *domain.BookingDraft, newCount int) {
	if newCount < 0 {
		newCount = 0
	}

	switch {
	case newCount > len(draft.Guests):
		for len(draft.Guests) < newCount {
			draft.Guests = append(draft.Guests, domain.GuestRecord{})
		}
	case newCount < len(draft.Guests):
		draft.Guests = draft.Guests[:newCount]
	}

	if len(draft.Guests) > 0 {
		draft.Guests[0].IsPrimary = true
		for i := 1; i < len(draft.Guests); i++ {
			draft.Guests[i].IsPrimary = false
		}
	}

	draft.OccupancyCount = newCount
}

// UpdateGuestField mutates a single field of one guest record. Editing the
// primary guest re-derives the draft's top-level contact fields.
func UpdateGuestField(draft *domain.BookingDraft, index int, field GuestField, value string) error {
	if index < 0 || index >= len(draft.Guests) {
		return fmt.Errorf("guest %d does not exist in the roster", index+1)
	}

	guest := &draft.Guests[index]
	switch field {
	case GuestFieldFirstName:
		guest.FirstName = value
	case GuestFieldLastName:
		guest.LastName = value
	case GuestFieldGender:
		guest.Gender = value
	case GuestFieldAge:
		guest.Age = value
	case GuestFieldPhone:
		guest.Phone = value
	case GuestFieldEmail:
		guest.Email = value
	default:
		return fmt.Errorf("unknown guest field %q", field)
	}

	if index == 0 {
		syncContactFromPrimary(draft)
	}

	return nil
}

// ApplyKnownGuest fills a roster slot from a known-guest directory entry and
// records the reference. An id that does not resolve is a silent no-op, as is
// an id already referenced by a different slot (no two slots may hold the
// same known guest at once). Re-applying the same id to its own slot is
// allowed.
func ApplyKnownGuest(draft *domain.BookingDraft, known []domain.KnownGuest, index int, knownGuestID string) error {
	if index < 0 || index >= len(draft.Guests) {
		return fmt.Errorf("guest %d does not exist in the roster", index+1)
	}

	var match *domain.KnownGuest
	for i := range known {
		if known[i].ID == knownGuestID {
			match = &known[i]
			break
		}
	}
	if match == nil {
		return nil
	}

	for i := range draft.Guests {
		if i != index && draft.Guests[i].KnownGuestRef == knownGuestID {
			return nil
		}
	}

	guest := &draft.Guests[index]
	guest.FirstName = match.FirstName
	guest.LastName = match.LastName
	guest.Gender = match.Gender
	guest.Age = strconv.Itoa(match.Age)
	guest.Phone = match.Phone
	guest.Email = match.Email
	guest.KnownGuestRef = knownGuestID

	if index == 0 {
		syncContactFromPrimary(draft)
	}

	return nil
}

// ClearKnownGuest blanks all editable fields of a slot, keeping its primary
// flag. Clearing the primary slot also clears the top-level contact fields.
func ClearKnownGuest(draft *domain.BookingDraft, index int) error {
	if index < 0 || index >= len(draft.Guests) {
		return fmt.Errorf("guest %d does not exist in the roster", index+1)
	}

	isPrimary := draft.Guests[index].IsPrimary
	draft.Guests[index] = domain.GuestRecord{IsPrimary: isPrimary}

	if index == 0 {
		draft.CustomerName = ""
		draft.Phone = ""
		draft.Email = ""
	}

	return nil
}

// SelectableKnownGuests annotates the directory with which entries are still
// selectable for the given slot. Entries referenced by any *other* slot come
// back disabled, enforcing the uniqueness invariant at the selection boundary.
func SelectableKnownGuests(draft *domain.BookingDraft, known []domain.KnownGuest, excludingIndex int) []domain.SelectableKnownGuest {
	taken := make(map[string]bool, len(draft.Guests))
	for i, g := range draft.Guests {
		if i != excludingIndex && g.KnownGuestRef != "" {
			taken[g.KnownGuestRef] = true
		}
	}

	out := make([]domain.SelectableKnownGuest, len(known))
	for i, kg := range known {
		out[i] = domain.SelectableKnownGuest{
			KnownGuest: kg,
			Disabled:   taken[kg.ID],
		}
	}
	return out
}

// DeriveContact projects the primary guest into the draft's top-level contact
// fields.
func DeriveContact(guest domain.GuestRecord) domain.ContactFields {
	return domain.ContactFields{
		Name:  strings.TrimSpace(strings.TrimSpace(guest.FirstName) + " " + strings.TrimSpace(guest.LastName)),
		Phone: guest.Phone,
		Email: guest.Email,
	}
}

// syncContactFromPrimary re-derives the top-level contact fields after a
// primary-guest edit. Empty guest fields fall back to the existing top-level
// values rather than blanking them.
func syncContactFromPrimary(draft *domain.BookingDraft) {
	if len(draft.Guests) == 0 {
		return
	}

	contact := DeriveContact(draft.Guests[0])
	if contact.Name != "" {
		draft.CustomerName = contact.Name
	}
	if contact.Phone != "" {
		draft.Phone = contact.Phone
	}
	if contact.Email != "" {
		draft.Email = contact.Email
	}
}
