package calculators

import (
	"github.com/shopspring/decimal"
)

// CreditCapacityParams holds the yearly figures for the DSCR derivation.
type CreditCapacityParams struct {
	EBITDA           decimal.Decimal
	Interest         decimal.Decimal
	Payouts          decimal.Decimal
	Taxes            decimal.Decimal
	Capex            decimal.Decimal
	TotalDebtService decimal.Decimal
}

// CreditCapacityResult reports free cash flow and the debt-service coverage
// ratio. DSCRDefined is false when there is no debt service to divide by; the
// DSCR is then zero, never NaN or infinity.
type CreditCapacityResult struct {
	FreeCashFlow decimal.Decimal `json:"freeCashFlow"`
	DSCR         decimal.Decimal `json:"dscr"`
	DSCRDefined  bool            `json:"dscrDefined"`
}

// CreditCapacity derives free cash flow and DSCR from yearly figures.
func CreditCapacity(params CreditCapacityParams) CreditCapacityResult {
	fcf := params.EBITDA.
		Sub(params.Interest).
		Sub(params.Payouts).
		Sub(params.Taxes).
		Sub(params.Capex).
		Round(2)

	result := CreditCapacityResult{FreeCashFlow: fcf, DSCR: decimal.Zero}
	if !params.TotalDebtService.IsZero() {
		result.DSCR = fcf.Div(params.TotalDebtService).Round(2)
		result.DSCRDefined = true
	}
	return result
}
