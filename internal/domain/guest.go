package domain

// GuestRecord represents one per-guest slot in a booking draft. The record at
// position 0 is the primary guest; its name, phone and email double as the
// draft's top-level contact fields.
type GuestRecord struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Gender        string `json:"gender"`
	Age           string `json:"age"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	IsPrimary     bool   `json:"isPrimary"`
	KnownGuestRef string `json:"knownGuestRef,omitempty"`
}

// KnownGuest is a guest previously associated with the account via an earlier
// booking, offered for quick roster autofill.
type KnownGuest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// SelectableKnownGuest annotates a known guest with whether it may still be
// selected into a given roster slot. Entries already referenced by another
// slot are disabled.
type SelectableKnownGuest struct {
	KnownGuest
	Disabled bool `json:"disabled"`
}
