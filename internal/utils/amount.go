package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts free-form numeric input from an editable plan cell into
// a decimal. Empty or malformed input fails closed to zero so a typo never
// corrupts a stored plan. A comma decimal separator is accepted.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
