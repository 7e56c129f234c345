package domain

import (
	"math"
	"strconv"

	"golang.org/x/text/currency"
)

// AnonymousDonor is shown when the upstream record carries no display name.
const AnonymousDonor = "Anonymous"

// NoCommentPlaceholder is shown when a donation has no donor comment.
const NoCommentPlaceholder = "No comment provided"

// Money is an upstream monetary value: a decimal string plus an ISO 4217 code.
type Money struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// Float64 returns the numeric value of m, or 0 when m is nil or its value
// does not parse as a number. A malformed record never fails a computation.
func (m *Money) Float64() float64 {
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m.Value, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

// Donation is a single supporter contribution as reported by the campaign
// platform. Records are transient: fetched per request, never stored.
type Donation struct {
	ID           string `json:"id,omitempty"`
	Amount       Money  `json:"amount"`
	DonorName    string `json:"donor_name"`
	DonorComment string `json:"donor_comment"`
	CompletedAt  string `json:"completed_at,omitempty"`
}

// Campaign holds the goal-related money fields of a campaign.
type Campaign struct {
	Goal              *Money
	AmountRaised      *Money
	TotalAmountRaised *Money
}

// Total is the aggregate of all donations for a campaign.
type Total struct {
	Amount   float64 `json:"total_amount"`
	Currency string  `json:"currency"`
}

// SumDonations reduces donation records into a running total. Records whose
// amount fails to parse contribute zero. The currency is taken from the first
// record that carries one, normalized to a valid ISO code, defaulting to USD.
func SumDonations(records []Donation) Total {
	var sum float64
	code := ""
	for i := range records {
		sum += records[i].Amount.Float64()
		if code == "" && records[i].Amount.Currency != "" {
			code = records[i].Amount.Currency
		}
	}
	return Total{Amount: sum, Currency: NormalizeCurrency(code)}
}

// NormalizeCurrency validates an ISO 4217 currency code, falling back to USD
// for empty or unknown codes.
func NormalizeCurrency(code string) string {
	if code == "" {
		return "USD"
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "USD"
	}
	return unit.String()
}
