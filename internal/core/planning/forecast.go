package planning

import (
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Project compounds the base year's category totals forward and re-derives
// the full subtotal chain for every horizon year. It returns horizon+1
// snapshots; index 0 is the unscaled base year.
//
// Each category compounds independently at its own rate. Administration and
// Sales reuse the Operating rate. Depreciation and private withdrawals are
// held constant (no reinvestment modeling, owner draw does not auto-scale);
// svs and income tax grow at the Tax rate. Rates are assumed validated
// >= -100 at the input boundary.
func Project(plan domain.Plan, rates domain.ForecastGrowthRates, horizon int) []domain.KeyFigures {
	if horizon < 0 {
		horizon = 0
	}

	base := rawTotals{
		revenue:      SectionTotal(plan, domain.CategoryRevenue, FullYear),
		material:     SectionTotal(plan, domain.CategoryMaterial, FullYear),
		personnel:    SectionTotal(plan, domain.CategoryPersonnel, FullYear),
		depreciation: SectionTotal(plan, domain.CategoryDepreciation, FullYear),
		operating:    SectionTotal(plan, domain.CategoryOperating, FullYear),
		admin:        SectionTotal(plan, domain.CategoryAdministration, FullYear),
		sales:        SectionTotal(plan, domain.CategorySales, FullYear),
		finance:      SectionTotal(plan, domain.CategoryFinance, FullYear),
	}
	if section, ok := plan.SectionByCategory(domain.CategoryTaxAndPrivate); ok {
		base.svs, base.incomeTax, base.privateWithdrawals, base.unclassified = TaxBuckets(section, FullYear)
	}

	out := make([]domain.KeyFigures, 0, horizon+1)
	for year := 0; year <= horizon; year++ {
		scaled := rawTotals{
			revenue:      scale(base.revenue, rates.Revenue, year),
			material:     scale(base.material, rates.Material, year),
			personnel:    scale(base.personnel, rates.Personnel, year),
			depreciation: base.depreciation, // held constant across the horizon
			operating:    scale(base.operating, rates.Operating, year),
			admin:        scale(base.admin, rates.Operating, year),
			sales:        scale(base.sales, rates.Operating, year),
			finance:      scale(base.finance, rates.Finance, year),
			svs:          scale(base.svs, rates.Tax, year),
			incomeTax:    scale(base.incomeTax, rates.Tax, year),
			privateWithdrawals: base.privateWithdrawals, // owner draw stays flat
			unclassified:       base.unclassified,
		}
		out = append(out, derive(scaled))
	}
	return out
}

// scale applies (1 + rate/100)^year to a base total and rounds to cents.
// Year 0 always returns the base unchanged, so the factor is exactly 1
// regardless of rate. A rate of -100 collapses the category to zero from
// year 1 on without producing NaN.
func scale(base decimal.Decimal, ratePercent float64, year int) decimal.Decimal {
	if year == 0 {
		return base
	}
	factor := decimal.NewFromFloat(1 + ratePercent/100)
	return base.Mul(factor.Pow(decimal.NewFromInt(int64(year)))).Round(2)
}
