package calculators_test

import (
	"testing"

	"github.com/plandesk/biz_planning_app/internal/core/calculators"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStraightLine_FirstHalfAcquisition(t *testing.T) {
	schedule := calculators.StraightLine(calculators.AssetParams{
		Cost:             decimal.NewFromInt(50000),
		UsefulLifeYears:  5,
		AcquisitionMonth: 3,
	})

	require.Len(t, schedule, 5)
	for _, year := range schedule {
		assert.True(t, year.Charge.Equal(decimal.NewFromInt(10000)), "year %d charge = %s", year.Year, year.Charge)
	}
	assert.True(t, schedule[4].BookValue.IsZero())
}

func TestStraightLine_HalfYearConvention(t *testing.T) {
	schedule := calculators.StraightLine(calculators.AssetParams{
		Cost:             decimal.NewFromInt(50000),
		UsefulLifeYears:  5,
		AcquisitionMonth: 9, // second half of the year
	})

	// Half charge in year 1 pushes the other half into a sixth year.
	require.Len(t, schedule, 6)
	assert.True(t, schedule[0].Charge.Equal(decimal.NewFromInt(5000)))
	for i := 1; i < 5; i++ {
		assert.True(t, schedule[i].Charge.Equal(decimal.NewFromInt(10000)), "year %d", i+1)
	}
	assert.True(t, schedule[5].Charge.Equal(decimal.NewFromInt(5000)))
	assert.True(t, schedule[5].BookValue.IsZero())
}

func TestStraightLine_ChargesSumToCost(t *testing.T) {
	schedule := calculators.StraightLine(calculators.AssetParams{
		Cost:             decimal.RequireFromString("10000.00"),
		UsefulLifeYears:  3, // 3333.33 yearly, remainder absorbed in the last year
		AcquisitionMonth: 1,
	})

	sum := decimal.Zero
	for _, year := range schedule {
		sum = sum.Add(year.Charge)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("10000.00")), "charges sum to %s", sum)
	assert.True(t, schedule[len(schedule)-1].BookValue.IsZero())
}

func TestStraightLine_LowValueImmediateWriteOff(t *testing.T) {
	schedule := calculators.StraightLine(calculators.AssetParams{
		Cost:             decimal.NewFromInt(800),
		UsefulLifeYears:  5,
		AcquisitionMonth: 11,
	})

	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Charge.Equal(decimal.NewFromInt(800)))
	assert.True(t, schedule[0].BookValue.IsZero())
}

func TestStraightLine_DegenerateInputs(t *testing.T) {
	assert.Empty(t, calculators.StraightLine(calculators.AssetParams{Cost: decimal.Zero, UsefulLifeYears: 5}))
	assert.Empty(t, calculators.StraightLine(calculators.AssetParams{Cost: decimal.NewFromInt(5000), UsefulLifeYears: 0}))
}
