package planning

import (
	"github.com/shopspring/decimal"
)

var twelve = decimal.NewFromInt(12)

// DistributeEvenly splits a yearly total into twelve months as equally as
// possible at cent precision. Months 1-11 get the floored twelfth; month 12
// absorbs the remainder so the map always sums back to exactly total. The
// remainder always lands in the last month, never the first or a spread.
func DistributeEvenly(total decimal.Decimal) map[int]decimal.Decimal {
	monthly := total.Div(twelve).RoundFloor(2)
	values := make(map[int]decimal.Decimal, 12)
	running := decimal.Zero
	for month := 1; month <= 11; month++ {
		values[month] = monthly
		running = running.Add(monthly)
	}
	values[12] = total.Sub(running)
	return values
}

// RescaleProportionally redistributes a new yearly total over an existing
// monthly shape. Months 1-11 are scaled by newTotal/sum(current) with
// per-month cent rounding; month 12 takes the residual so the result sums to
// newTotal exactly. An all-zero current map has no shape to preserve and
// falls back to even distribution.
func RescaleProportionally(newTotal decimal.Decimal, current map[int]decimal.Decimal) map[int]decimal.Decimal {
	currentSum := decimal.Zero
	for month := 1; month <= 12; month++ {
		if v, ok := current[month]; ok {
			currentSum = currentSum.Add(v)
		}
	}
	if currentSum.IsZero() {
		return DistributeEvenly(newTotal)
	}

	ratio := newTotal.Div(currentSum)
	values := make(map[int]decimal.Decimal, 12)
	running := decimal.Zero
	for month := 1; month <= 11; month++ {
		var v decimal.Decimal
		if cur, ok := current[month]; ok {
			v = cur.Mul(ratio).Round(2)
		} else {
			v = decimal.Zero
		}
		values[month] = v
		running = running.Add(v)
	}
	values[12] = newTotal.Sub(running)
	return values
}
