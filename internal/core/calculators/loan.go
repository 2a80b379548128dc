// Package calculators bundles the auxiliary planning calculators: loan
// amortization, depreciation, payroll on-costs, income tax brackets and
// credit capacity. They share the numeric conventions of the planning core
// but operate on their own simple input shapes.
package calculators

import (
	"math"

	"github.com/shopspring/decimal"
)

// LoanTerms describes a fixed-annuity loan.
type LoanTerms struct {
	Principal         decimal.Decimal
	AnnualRatePercent float64
	TermYears         int
	PaymentsPerYear   int
}

// LoanPeriod is one row of an amortization schedule.
type LoanPeriod struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Interest         decimal.Decimal `json:"interest"`
	Principal        decimal.Decimal `json:"principal"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// LoanSchedule is the full amortization result.
type LoanSchedule struct {
	Annuity       decimal.Decimal `json:"annuity"` // regular per-period payment
	Periods       []LoanPeriod    `json:"periods"`
	TotalInterest decimal.Decimal `json:"totalInterest"`
}

// AmortizationSchedule walks a fixed-annuity schedule. Each period accrues
// interest on the open balance; the final period pays off the remaining
// balance exactly, absorbing accumulated cent rounding. A zero rate uses the
// straight division A = P/n since the compound formula would divide by zero.
func AmortizationSchedule(terms LoanTerms) LoanSchedule {
	n := terms.TermYears * terms.PaymentsPerYear
	if n <= 0 || terms.Principal.IsZero() {
		return LoanSchedule{Annuity: decimal.Zero, Periods: []LoanPeriod{}, TotalInterest: decimal.Zero}
	}

	periodRate := terms.AnnualRatePercent / 100 / float64(terms.PaymentsPerYear)

	var annuity decimal.Decimal
	if periodRate == 0 {
		annuity = terms.Principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	} else {
		principal, _ := terms.Principal.Float64()
		compound := math.Pow(1+periodRate, float64(n))
		annuity = decimal.NewFromFloat(principal * periodRate * compound / (compound - 1)).Round(2)
	}

	rate := decimal.NewFromFloat(periodRate)
	balance := terms.Principal
	totalInterest := decimal.Zero
	periods := make([]LoanPeriod, 0, n)

	for period := 1; period <= n; period++ {
		interest := balance.Mul(rate).Round(2)
		principalPart := annuity.Sub(interest)
		payment := annuity
		if period == n || principalPart.GreaterThanOrEqual(balance) {
			// Final payment clears the balance exactly.
			principalPart = balance
			payment = interest.Add(principalPart)
		}
		balance = balance.Sub(principalPart)
		totalInterest = totalInterest.Add(interest)
		periods = append(periods, LoanPeriod{
			Period:           period,
			Payment:          payment,
			Interest:         interest,
			Principal:        principalPart,
			RemainingBalance: balance,
		})
		if balance.IsZero() {
			break
		}
	}

	return LoanSchedule{Annuity: annuity, Periods: periods, TotalInterest: totalInterest}
}
