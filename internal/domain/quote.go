package domain

// PriceQuote holds the price figures computed from the draft's dates and the
// selected room's nightly rate. It is recomputed on every input change and
// never persisted on its own.
type PriceQuote struct {
	DurationNights int     `json:"durationNights"`
	NightlyRate    float64 `json:"nightlyRate"`
	TotalAmount    float64 `json:"totalAmount"`
	MinimumAdvance float64 `json:"minimumAdvance"`
}
