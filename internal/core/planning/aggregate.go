// Package planning holds the pure calculation core: section aggregation, the
// key-figure subtotal chain, monthly distribution and the forecast projector.
// All functions are side-effect free and total over their input domain;
// missing sections aggregate to zero, never to an error.
package planning

import (
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FullYear selects the whole fiscal year instead of a single month.
const FullYear = 0

// SectionTotal returns a category's total for the selected period. month is
// 1-12 for a single month or FullYear for the yearly total. A plan without
// the category yields zero.
func SectionTotal(plan domain.Plan, category domain.SectionCategory, month int) decimal.Decimal {
	section, ok := plan.SectionByCategory(category)
	if !ok {
		return decimal.Zero
	}
	if month >= 1 && month <= 12 {
		return section.MonthTotal(month)
	}
	return section.YearTotal()
}

// rawTotals carries the per-category inputs of the subtotal chain. The
// projector fills the same struct from scaled figures so the chain is derived
// through a single code path.
type rawTotals struct {
	revenue      decimal.Decimal
	material     decimal.Decimal
	personnel    decimal.Decimal
	depreciation decimal.Decimal
	operating    decimal.Decimal
	admin        decimal.Decimal
	sales        decimal.Decimal
	finance      decimal.Decimal

	svs                decimal.Decimal
	incomeTax          decimal.Decimal
	privateWithdrawals decimal.Decimal
	unclassified       decimal.Decimal
}

// KeyFigures computes the derived snapshot for one period of a plan.
// month is 1-12 or FullYear.
func KeyFigures(plan domain.Plan, month int) domain.KeyFigures {
	raw := rawTotals{
		revenue:      SectionTotal(plan, domain.CategoryRevenue, month),
		material:     SectionTotal(plan, domain.CategoryMaterial, month),
		personnel:    SectionTotal(plan, domain.CategoryPersonnel, month),
		depreciation: SectionTotal(plan, domain.CategoryDepreciation, month),
		operating:    SectionTotal(plan, domain.CategoryOperating, month),
		admin:        SectionTotal(plan, domain.CategoryAdministration, month),
		sales:        SectionTotal(plan, domain.CategorySales, month),
		finance:      SectionTotal(plan, domain.CategoryFinance, month),
	}
	if section, ok := plan.SectionByCategory(domain.CategoryTaxAndPrivate); ok {
		raw.svs, raw.incomeTax, raw.privateWithdrawals, raw.unclassified = TaxBuckets(section, month)
	}
	return derive(raw)
}

// MonthlyKeyFigures computes the twelve monthly snapshots plus the full-year
// snapshot in one pass. Index 0 is the year; indexes 1-12 are the months.
func MonthlyKeyFigures(plan domain.Plan) [13]domain.KeyFigures {
	var out [13]domain.KeyFigures
	out[0] = KeyFigures(plan, FullYear)
	for month := 1; month <= 12; month++ {
		out[month] = KeyFigures(plan, month)
	}
	return out
}

// derive runs the fixed subtotal chain. Each figure depends only on raw
// totals and previously derived figures; do not reorder.
func derive(raw rawTotals) domain.KeyFigures {
	kf := domain.KeyFigures{
		Revenue:            raw.revenue,
		Material:           raw.material,
		Personnel:          raw.personnel,
		Depreciation:       raw.depreciation,
		Operating:          raw.operating,
		Admin:              raw.admin,
		Sales:              raw.sales,
		Finance:            raw.finance,
		SVS:                raw.svs,
		IncomeTax:          raw.incomeTax,
		PrivateWithdrawals: raw.privateWithdrawals,
		Unclassified:       raw.unclassified,
	}
	kf.DB1 = kf.Revenue.Sub(kf.Material)
	kf.DB2 = kf.DB1.Sub(kf.Personnel)
	kf.EBIT = kf.DB2.Sub(kf.Depreciation.Add(kf.Operating).Add(kf.Admin).Add(kf.Sales))
	kf.EBITDA = kf.EBIT.Add(kf.Depreciation)
	kf.EGT = kf.EBIT.Sub(kf.Finance)
	kf.Result = kf.EGT.Sub(kf.SVS).Sub(kf.IncomeTax).Sub(kf.PrivateWithdrawals)
	kf.TotalFixedCosts = kf.Depreciation.Add(kf.Operating).Add(kf.Admin).Add(kf.Sales).Add(kf.Finance)
	return kf
}
