package settings

import "fmt"

// Currency of all displayed amounts.
type Currency string

const (
	INR Currency = "INR"
	USD Currency = "USD"
)

// Settings is the process-wide pricing configuration. Exactly one instance
// is created in main and handed to every consumer by pointer, so a mutation
// through any holder is visible to all of them.
type Settings struct {
	Currency        Currency `json:"currency"`
	TaxPercent      int      `json:"tax_percent"`
	DiscountPercent int      `json:"discount_percent"`
}

func New(currency Currency, taxPercent, discountPercent int) *Settings {
	return &Settings{
		Currency:        currency,
		TaxPercent:      taxPercent,
		DiscountPercent: discountPercent,
	}
}

// ToggleCurrency flips between INR and USD in place.
func (s *Settings) ToggleCurrency() {
	if s.Currency == INR {
		s.Currency = USD
	} else {
		s.Currency = INR
	}
}

// Describe renders the current values in display form.
func (s *Settings) Describe() string {
	return fmt.Sprintf("Currency=%s, Tax=%d%%, Discount=%d%%", s.Currency, s.TaxPercent, s.DiscountPercent)
}
