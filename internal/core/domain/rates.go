package domain

import "github.com/shopspring/decimal"

// RateTable maps a currency code to its rate relative to USD
// ("1 USD = rate units of this currency"). A populated table always contains
// USD at exactly 1.
type RateTable map[string]decimal.Decimal

// Has reports whether the table holds a usable (positive) rate for code.
func (t RateTable) Has(code string) bool {
	rate, ok := t[code]
	return ok && rate.IsPositive()
}

// Clone returns an independent copy of the table.
func (t RateTable) Clone() RateTable {
	out := make(RateTable, len(t))
	for code, rate := range t {
		out[code] = rate
	}
	return out
}

// RateProvenance records which data source produced the current rate table.
type RateProvenance string

const (
	RatesFromPrimary  RateProvenance = "primary"
	RatesFromBackup   RateProvenance = "backup"
	RatesFromFallback RateProvenance = "fallback"
)
