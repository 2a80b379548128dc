package planning_test

import (
	"testing"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/core/planning"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forecastTestPlan(t *testing.T) domain.Plan {
	t.Helper()
	taxPrivate := domain.Section{
		Category: domain.CategoryTaxAndPrivate,
		Items: []domain.LineItem{
			{ItemID: "svs", TaxKind: domain.TaxSVS, Values: planning.DistributeEvenly(decimal.NewFromInt(12000))},
			{ItemID: "est", TaxKind: domain.TaxIncomeTax, Values: planning.DistributeEvenly(decimal.NewFromInt(9000))},
			{ItemID: "priv", TaxKind: domain.TaxPrivateWithdrawal, Values: planning.DistributeEvenly(decimal.NewFromInt(30000))},
		},
	}
	plan, err := domain.NewPlan([]domain.Section{
		sectionWithYearTotal(domain.CategoryRevenue, "Erlöse", 200000),
		sectionWithYearTotal(domain.CategoryMaterial, "Material", 50000),
		sectionWithYearTotal(domain.CategoryPersonnel, "Personal", 60000),
		sectionWithYearTotal(domain.CategoryDepreciation, "AfA", 10000),
		sectionWithYearTotal(domain.CategoryOperating, "Betrieb", 8000),
		sectionWithYearTotal(domain.CategoryAdministration, "Verwaltung", 4000),
		sectionWithYearTotal(domain.CategorySales, "Vertrieb", 6000),
		sectionWithYearTotal(domain.CategoryFinance, "Zinsen", 2000),
		taxPrivate,
	})
	require.NoError(t, err)
	return plan
}

func TestProject_YearZeroEqualsBase(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Revenue: 10, Material: 5, Personnel: 3, Operating: 2, Finance: 1, Tax: 4}

	projected := planning.Project(plan, rates, 5)
	require.Len(t, projected, 6)

	base := planning.KeyFigures(plan, planning.FullYear)
	assert.Equal(t, base, projected[0], "year 0 must equal the base key figures for every field")
}

func TestProject_CompoundsIndependentlyPerCategory(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Revenue: 10} // all other rates zero

	projected := planning.Project(plan, rates, 2)

	// 200000 * 1.10^2 = 242000; other categories unchanged.
	assert.True(t, projected[2].Revenue.Equal(decimal.NewFromInt(242000)), "revenue = %s", projected[2].Revenue)
	assert.True(t, projected[2].Material.Equal(decimal.NewFromInt(50000)))
	assert.True(t, projected[2].Personnel.Equal(decimal.NewFromInt(60000)))
}

func TestProject_ChainRederivedFromScaledTotals(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Revenue: 10, Material: 5, Personnel: 3, Operating: 2, Finance: 1, Tax: 4}

	for year, kf := range planning.Project(plan, rates, 3) {
		assert.True(t, kf.DB1.Equal(kf.Revenue.Sub(kf.Material)), "year %d db1", year)
		assert.True(t, kf.DB2.Equal(kf.DB1.Sub(kf.Personnel)), "year %d db2", year)
		assert.True(t, kf.EBITDA.Equal(kf.EBIT.Add(kf.Depreciation)), "year %d ebitda", year)
		assert.True(t, kf.EGT.Equal(kf.EBIT.Sub(kf.Finance)), "year %d egt", year)
		assert.True(t, kf.Result.Equal(kf.EGT.Sub(kf.SVS).Sub(kf.IncomeTax).Sub(kf.PrivateWithdrawals)), "year %d result", year)
	}
}

func TestProject_DepreciationAndWithdrawalsHeldConstant(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Revenue: 10, Material: 10, Personnel: 10, Operating: 10, Finance: 10, Tax: 10}

	projected := planning.Project(plan, rates, 4)
	for year, kf := range projected {
		assert.True(t, kf.Depreciation.Equal(decimal.NewFromInt(10000)), "year %d depreciation moved", year)
		assert.True(t, kf.PrivateWithdrawals.Equal(decimal.NewFromInt(30000)), "year %d withdrawals moved", year)
	}
	// Tax-rate driven buckets do compound.
	assert.True(t, projected[1].SVS.Equal(decimal.NewFromInt(13200)), "svs year 1 = %s", projected[1].SVS)
	assert.True(t, projected[1].IncomeTax.Equal(decimal.NewFromInt(9900)))
}

func TestProject_OperatingRateCoversAdminAndSales(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Operating: 50}

	projected := planning.Project(plan, rates, 1)
	assert.True(t, projected[1].Operating.Equal(decimal.NewFromInt(12000)))
	assert.True(t, projected[1].Admin.Equal(decimal.NewFromInt(6000)))
	assert.True(t, projected[1].Sales.Equal(decimal.NewFromInt(9000)))
}

func TestProject_MinusHundredCollapsesToZero(t *testing.T) {
	plan := forecastTestPlan(t)
	rates := domain.ForecastGrowthRates{Revenue: -100}

	projected := planning.Project(plan, rates, 3)
	assert.True(t, projected[0].Revenue.Equal(decimal.NewFromInt(200000)))
	for year := 1; year <= 3; year++ {
		assert.True(t, projected[year].Revenue.IsZero(), "year %d revenue = %s", year, projected[year].Revenue)
	}
}
