package domain

import "testing"

func TestSumDonations(t *testing.T) {
	cases := []struct {
		name         string
		records      []Donation
		wantAmount   float64
		wantCurrency string
	}{
		{
			name: "sums decimal amounts",
			records: []Donation{
				{Amount: Money{Value: "10.00", Currency: "USD"}},
				{Amount: Money{Value: "5.50", Currency: "USD"}},
			},
			wantAmount:   15.50,
			wantCurrency: "USD",
		},
		{
			name: "malformed amount contributes zero",
			records: []Donation{
				{Amount: Money{Value: "10.00", Currency: "USD"}},
				{Amount: Money{Value: "not-a-number", Currency: "USD"}},
			},
			wantAmount:   10.00,
			wantCurrency: "USD",
		},
		{
			name:         "empty set",
			records:      nil,
			wantAmount:   0,
			wantCurrency: "USD",
		},
		{
			name: "currency taken from first record carrying one",
			records: []Donation{
				{Amount: Money{Value: "1.00"}},
				{Amount: Money{Value: "2.00", Currency: "EUR"}},
			},
			wantAmount:   3.00,
			wantCurrency: "EUR",
		},
		{
			name: "unknown currency falls back to USD",
			records: []Donation{
				{Amount: Money{Value: "4.00", Currency: "???"}},
			},
			wantAmount:   4.00,
			wantCurrency: "USD",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SumDonations(tc.records)
			if got.Amount != tc.wantAmount {
				t.Fatalf("Amount = %v, want %v", got.Amount, tc.wantAmount)
			}
			if got.Currency != tc.wantCurrency {
				t.Fatalf("Currency = %q, want %q", got.Currency, tc.wantCurrency)
			}
		})
	}
}

func TestMoneyFloat64(t *testing.T) {
	if got := (&Money{Value: "12.34"}).Float64(); got != 12.34 {
		t.Fatalf("Float64 = %v, want 12.34", got)
	}
	if got := (&Money{Value: "NaN"}).Float64(); got != 0 {
		t.Fatalf("Float64(NaN) = %v, want 0", got)
	}
	if got := (&Money{Value: "oops"}).Float64(); got != 0 {
		t.Fatalf("Float64(oops) = %v, want 0", got)
	}
	var m *Money
	if got := m.Float64(); got != 0 {
		t.Fatalf("Float64(nil) = %v, want 0", got)
	}
}

func TestNormalizeCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "USD"},
		{"usd", "USD"},
		{"EUR", "EUR"},
		{"XYZ123", "USD"},
	}
	for _, tc := range cases {
		if got := NormalizeCurrency(tc.in); got != tc.want {
			t.Fatalf("NormalizeCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
