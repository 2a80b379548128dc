package calculators_test

import (
	"testing"

	"github.com/plandesk/biz_planning_app/internal/core/calculators"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationSchedule_Converges(t *testing.T) {
	schedule := calculators.AmortizationSchedule(calculators.LoanTerms{
		Principal:         decimal.NewFromInt(100000),
		AnnualRatePercent: 5,
		TermYears:         10,
		PaymentsPerYear:   12,
	})

	require.Len(t, schedule.Periods, 120)

	// Standard annuity for 100000 at 5% over 120 months is 1060.66.
	assert.True(t, schedule.Annuity.Equal(decimal.RequireFromString("1060.66")), "annuity = %s", schedule.Annuity)

	final := schedule.Periods[len(schedule.Periods)-1]
	assert.True(t, final.RemainingBalance.IsZero(), "final balance = %s", final.RemainingBalance)

	principalSum := decimal.Zero
	for _, p := range schedule.Periods {
		principalSum = principalSum.Add(p.Principal)
	}
	assert.True(t, principalSum.Equal(decimal.NewFromInt(100000)), "principal sum = %s", principalSum)

	// Interest declines as the balance is paid down.
	assert.True(t, schedule.Periods[0].Interest.GreaterThan(final.Interest))
}

func TestAmortizationSchedule_ZeroRate(t *testing.T) {
	schedule := calculators.AmortizationSchedule(calculators.LoanTerms{
		Principal:         decimal.NewFromInt(12000),
		AnnualRatePercent: 0,
		TermYears:         1,
		PaymentsPerYear:   12,
	})

	require.Len(t, schedule.Periods, 12)
	assert.True(t, schedule.Annuity.Equal(decimal.NewFromInt(1000)))
	assert.True(t, schedule.TotalInterest.IsZero())
	assert.True(t, schedule.Periods[11].RemainingBalance.IsZero())
}

func TestAmortizationSchedule_DegenerateTerms(t *testing.T) {
	tests := []struct {
		name  string
		terms calculators.LoanTerms
	}{
		{"zero term", calculators.LoanTerms{Principal: decimal.NewFromInt(1000), AnnualRatePercent: 5, TermYears: 0, PaymentsPerYear: 12}},
		{"zero payments per year", calculators.LoanTerms{Principal: decimal.NewFromInt(1000), AnnualRatePercent: 5, TermYears: 10, PaymentsPerYear: 0}},
		{"zero principal", calculators.LoanTerms{Principal: decimal.Zero, AnnualRatePercent: 5, TermYears: 10, PaymentsPerYear: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schedule := calculators.AmortizationSchedule(tt.terms)
			assert.Empty(t, schedule.Periods)
			assert.True(t, schedule.Annuity.IsZero())
		})
	}
}

func TestAmortizationSchedule_AnnualPayments(t *testing.T) {
	schedule := calculators.AmortizationSchedule(calculators.LoanTerms{
		Principal:         decimal.NewFromInt(50000),
		AnnualRatePercent: 4,
		TermYears:         5,
		PaymentsPerYear:   1,
	})

	require.Len(t, schedule.Periods, 5)
	// First year's interest is 4% of the full principal.
	assert.True(t, schedule.Periods[0].Interest.Equal(decimal.NewFromInt(2000)))
	assert.True(t, schedule.Periods[4].RemainingBalance.IsZero())
}
