package dto

import (
	"github.com/plandesk/biz_planning_app/internal/core/calculators"
	"github.com/shopspring/decimal"
)

// LoanRequest configures a fixed-annuity amortization run.
type LoanRequest struct {
	Principal         decimal.Decimal `json:"principal" binding:"required"`
	AnnualRatePercent float64         `json:"annualRatePercent" binding:"gte=0"`
	TermYears         int             `json:"termYears" binding:"required,gte=1,lte=50"`
	PaymentsPerYear   int             `json:"paymentsPerYear" binding:"required,oneof=1 2 4 12"`
}

// ToLoanTerms converts the request into calculator input.
func (r LoanRequest) ToLoanTerms() calculators.LoanTerms {
	return calculators.LoanTerms{
		Principal:         r.Principal,
		AnnualRatePercent: r.AnnualRatePercent,
		TermYears:         r.TermYears,
		PaymentsPerYear:   r.PaymentsPerYear,
	}
}

// DepreciationRequest configures a straight-line depreciation schedule.
type DepreciationRequest struct {
	Cost             decimal.Decimal `json:"cost" binding:"required"`
	UsefulLifeYears  int             `json:"usefulLifeYears" binding:"required,gte=1,lte=100"`
	AcquisitionMonth int             `json:"acquisitionMonth" binding:"required,planmonth"`
}

// ToAssetParams converts the request into calculator input.
func (r DepreciationRequest) ToAssetParams() calculators.AssetParams {
	return calculators.AssetParams{
		Cost:             r.Cost,
		UsefulLifeYears:  r.UsefulLifeYears,
		AcquisitionMonth: r.AcquisitionMonth,
	}
}

// DepreciationResponse wraps the yearly schedule.
type DepreciationResponse struct {
	Schedule []calculators.DepreciationYear `json:"schedule"`
}

// PayrollRequest configures the employer-cost loading for one position.
type PayrollRequest struct {
	MonthlyGross decimal.Decimal `json:"monthlyGross" binding:"required"`
	Payments     int             `json:"payments" binding:"required,gte=12,lte=15"`
	FTE          float64         `json:"fte" binding:"required,gt=0,lte=1"`
	AnnualExtras decimal.Decimal `json:"annualExtras"`
}

// ToPayrollParams converts the request into calculator input.
func (r PayrollRequest) ToPayrollParams() calculators.PayrollParams {
	return calculators.PayrollParams{
		MonthlyGross: r.MonthlyGross,
		Payments:     r.Payments,
		FTE:          r.FTE,
		AnnualExtras: r.AnnualExtras,
	}
}

// IncomeTaxRequest asks for the progressive tax on a yearly taxable base.
// Without explicit brackets the default schedule applies.
type IncomeTaxRequest struct {
	TaxableBase decimal.Decimal          `json:"taxableBase" binding:"required"`
	Brackets    []calculators.TaxBracket `json:"brackets"`
}

// IncomeTaxResponse reports the tax due and the resulting average rate.
type IncomeTaxResponse struct {
	TaxDue             decimal.Decimal `json:"taxDue"`
	AverageRatePercent decimal.Decimal `json:"averageRatePercent"`
}

// CreditCapacityRequest carries the yearly figures for the DSCR derivation.
type CreditCapacityRequest struct {
	EBITDA           decimal.Decimal `json:"ebitda" binding:"required"`
	Interest         decimal.Decimal `json:"interest"`
	Payouts          decimal.Decimal `json:"payouts"`
	Taxes            decimal.Decimal `json:"taxes"`
	Capex            decimal.Decimal `json:"capex"`
	TotalDebtService decimal.Decimal `json:"totalDebtService"`
}

// ToCreditCapacityParams converts the request into calculator input.
func (r CreditCapacityRequest) ToCreditCapacityParams() calculators.CreditCapacityParams {
	return calculators.CreditCapacityParams{
		EBITDA:           r.EBITDA,
		Interest:         r.Interest,
		Payouts:          r.Payouts,
		Taxes:            r.Taxes,
		Capex:            r.Capex,
		TotalDebtService: r.TotalDebtService,
	}
}
