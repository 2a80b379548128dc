package calculators

import (
	"github.com/shopspring/decimal"
)

// LowValueAssetThreshold is the acquisition cost at or below which an asset
// is fully expensed in the acquisition year instead of depreciated.
// Illustrative snapshot, not a compliance figure.
var LowValueAssetThreshold = decimal.NewFromInt(1000)

// AssetParams describes one asset for straight-line depreciation.
type AssetParams struct {
	Cost             decimal.Decimal
	UsefulLifeYears  int
	AcquisitionMonth int // 1-12; month > 6 triggers the half-year convention
}

// DepreciationYear is one year of the charge schedule.
type DepreciationYear struct {
	Year      int             `json:"year"` // 1-based offset from the acquisition year
	Charge    decimal.Decimal `json:"charge"`
	BookValue decimal.Decimal `json:"bookValue"` // remaining value after the charge
}

// StraightLine builds the yearly depreciation schedule. The annual charge is
// cost/usefulLife; acquisition in the second half of the year halves the
// first-year charge, pushing the other half into an extra trailing year.
// Low-value assets are written off entirely in year one. The last year's
// charge is the remaining book value, absorbing cent rounding.
func StraightLine(params AssetParams) []DepreciationYear {
	if params.Cost.IsZero() || params.UsefulLifeYears <= 0 {
		return []DepreciationYear{}
	}
	if params.Cost.LessThanOrEqual(LowValueAssetThreshold) {
		return []DepreciationYear{{Year: 1, Charge: params.Cost, BookValue: decimal.Zero}}
	}

	annual := params.Cost.Div(decimal.NewFromInt(int64(params.UsefulLifeYears))).Round(2)
	firstYear := annual
	if params.AcquisitionMonth > 6 {
		firstYear = annual.Div(decimal.NewFromInt(2)).Round(2)
	}

	totalYears := params.UsefulLifeYears
	if params.AcquisitionMonth > 6 {
		totalYears++ // the halved first year pushes the rest one year out
	}

	schedule := make([]DepreciationYear, 0, totalYears)
	remaining := params.Cost
	for year := 1; year <= totalYears && remaining.IsPositive(); year++ {
		charge := annual
		if year == 1 {
			charge = firstYear
		}
		if year == totalYears || charge.GreaterThan(remaining) {
			charge = remaining
		}
		remaining = remaining.Sub(charge)
		schedule = append(schedule, DepreciationYear{Year: year, Charge: charge, BookValue: remaining})
	}
	return schedule
}
