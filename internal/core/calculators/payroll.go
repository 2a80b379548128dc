package calculators

import (
	"github.com/shopspring/decimal"
)

// Statutory employer on-cost percentages applied to the gross annual wage.
// Illustrative snapshot of Austrian employer charges, not a compliance table.
var EmployerOnCostRates = []struct {
	Label       string
	RatePercent float64
}{
	{"Sozialversicherung Dienstgeberanteil", 20.98},
	{"Betriebliche Vorsorgekasse", 1.53},
	{"Dienstgeberbeitrag FLAF", 3.90},
	{"Zuschlag zum Dienstgeberbeitrag", 0.38},
	{"Kommunalsteuer", 3.00},
}

// PayrollParams describes one position for the employer-cost loading.
type PayrollParams struct {
	MonthlyGross decimal.Decimal
	Payments     int             // salaries per year incl. bonus months, typically 14
	FTE          float64         // full-time-equivalent factor, 1.0 = full time
	AnnualExtras decimal.Decimal // flat extras (allowances, benefits) per year
}

// PayrollResult is the employer-cost breakdown.
type PayrollResult struct {
	GrossAnnual decimal.Decimal `json:"grossAnnual"`
	OnCosts     decimal.Decimal `json:"onCosts"`
	TotalCost   decimal.Decimal `json:"totalCost"`
}

// EmployerCost loads a gross annual wage with the fixed sum of statutory
// percentage add-ons: monthly gross x payments x FTE plus flat extras, then
// the on-cost percentage on top.
func EmployerCost(params PayrollParams) PayrollResult {
	gross := params.MonthlyGross.
		Mul(decimal.NewFromInt(int64(params.Payments))).
		Mul(decimal.NewFromFloat(params.FTE)).
		Add(params.AnnualExtras).
		Round(2)

	totalRate := 0.0
	for _, oc := range EmployerOnCostRates {
		totalRate += oc.RatePercent
	}
	onCosts := gross.Mul(decimal.NewFromFloat(totalRate / 100)).Round(2)

	return PayrollResult{
		GrossAnnual: gross,
		OnCosts:     onCosts,
		TotalCost:   gross.Add(onCosts),
	}
}
