package calculators

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is one (upper threshold, marginal rate) tuple. The final bracket
// of a schedule is open-ended; its UpperBound is ignored.
type TaxBracket struct {
	UpperBound  decimal.Decimal `json:"upperBound"`
	RatePercent float64         `json:"ratePercent"`
}

// DefaultTaxBrackets is an illustrative snapshot of the Austrian progressive
// income tax schedule.
var DefaultTaxBrackets = []TaxBracket{
	{UpperBound: decimal.NewFromInt(12816), RatePercent: 0},
	{UpperBound: decimal.NewFromInt(20818), RatePercent: 20},
	{UpperBound: decimal.NewFromInt(34513), RatePercent: 30},
	{UpperBound: decimal.NewFromInt(66612), RatePercent: 40},
	{UpperBound: decimal.NewFromInt(99266), RatePercent: 48},
	{UpperBound: decimal.NewFromInt(1000000), RatePercent: 50},
	{RatePercent: 55}, // open-ended
}

// TaxDue walks the ordered brackets, accumulating min(remaining, width) at
// each marginal rate. A base at or below the first threshold is taxed at that
// bracket's rate only; the last bracket absorbs everything above its
// predecessor's threshold.
func TaxDue(base decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if base.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return decimal.Zero
	}

	tax := decimal.Zero
	remaining := base
	lower := decimal.Zero
	for i, bracket := range brackets {
		var width decimal.Decimal
		if i == len(brackets)-1 {
			width = remaining // open-ended final bracket
		} else {
			width = bracket.UpperBound.Sub(lower)
			lower = bracket.UpperBound
		}
		taxable := decimal.Min(remaining, width)
		tax = tax.Add(taxable.Mul(decimal.NewFromFloat(bracket.RatePercent / 100)))
		remaining = remaining.Sub(taxable)
		if !remaining.IsPositive() {
			break
		}
	}
	return tax.Round(2)
}
