package utils

import "github.com/shopspring/decimal"

// FormatAmount formats a money amount with two decimal places for display.
// Aggregation results keep full precision; rounding happens only here.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
