package domain

import (
	"fmt"

	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// ItemKind tags the semantic role of a line item row for display purposes.
// Stored monthly values are already signed; aggregation never negates them.
type ItemKind string

const (
	ItemRevenue  ItemKind = "REVENUE"
	ItemExpense  ItemKind = "EXPENSE"
	ItemSubtotal ItemKind = "SUBTOTAL"
	ItemResult   ItemKind = "RESULT"
)

// SectionCategory is the closed set of categorical roles a plan section can
// take. A plan holds at most one section per category.
type SectionCategory string

const (
	CategoryRevenue       SectionCategory = "REVENUE"
	CategoryMaterial      SectionCategory = "MATERIAL"
	CategoryPersonnel     SectionCategory = "PERSONNEL"
	CategoryDepreciation  SectionCategory = "DEPRECIATION"
	CategoryOperating     SectionCategory = "OPERATING"
	CategorySales         SectionCategory = "SALES"
	CategoryAdministration SectionCategory = "ADMINISTRATION"
	CategoryFinance       SectionCategory = "FINANCE"
	CategoryTaxAndPrivate SectionCategory = "TAX_AND_PRIVATE"
)

// SectionCategories lists all categories in their canonical display order.
var SectionCategories = []SectionCategory{
	CategoryRevenue,
	CategoryMaterial,
	CategoryPersonnel,
	CategoryDepreciation,
	CategoryOperating,
	CategorySales,
	CategoryAdministration,
	CategoryFinance,
	CategoryTaxAndPrivate,
}

// TaxItemKind classifies rows of the tax-and-private section. Rows are tagged
// explicitly at creation; legacy rows carry TaxUnclassified and are auto-tagged
// once from their account number or label when the plan is stored.
type TaxItemKind string

const (
	TaxSVS               TaxItemKind = "SVS"
	TaxIncomeTax         TaxItemKind = "INCOME_TAX"
	TaxPrivateWithdrawal TaxItemKind = "PRIVATE_WITHDRAWAL"
	TaxUnclassified      TaxItemKind = "UNCLASSIFIED"
)

// LineItem is one ledger-style row of a section holding one fiscal year of
// monthly values. Absent months count as zero.
type LineItem struct {
	ItemID        string                  `json:"itemID"`
	AccountNumber string                  `json:"accountNumber,omitempty"` // optional chart-of-accounts code
	Label         string                  `json:"label"`
	Kind          ItemKind                `json:"kind"`
	TaxKind       TaxItemKind             `json:"taxKind,omitempty"` // only meaningful inside TAX_AND_PRIVATE
	Values        map[int]decimal.Decimal `json:"values"`            // month (1-12) -> amount
}

// YearTotal sums the item's monthly values and rounds once at cent precision.
func (li LineItem) YearTotal() decimal.Decimal {
	sum := decimal.Zero
	for month := 1; month <= 12; month++ {
		if v, ok := li.Values[month]; ok {
			sum = sum.Add(v)
		}
	}
	return sum.Round(2)
}

// MonthValue returns the value stored for a month, zero when absent.
func (li LineItem) MonthValue(month int) decimal.Decimal {
	if v, ok := li.Values[month]; ok {
		return v
	}
	return decimal.Zero
}

// Section is an ordered group of line items sharing one categorical role.
type Section struct {
	SectionID  string          `json:"sectionID"`
	Label      string          `json:"label"`
	OrderIndex int             `json:"orderIndex"`
	Category   SectionCategory `json:"category"`
	Items      []LineItem      `json:"items"`
}

// MonthTotal sums the section's items at one month. Summation is
// order-independent; items missing the month contribute zero.
func (s Section) MonthTotal(month int) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.MonthValue(month))
	}
	return sum.Round(2)
}

// YearTotal sums the items' yearly totals.
func (s Section) YearTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.Items {
		sum = sum.Add(item.YearTotal())
	}
	return sum.Round(2)
}

// Plan is the ordered set of sections for one fiscal year. Construct via
// NewPlan so the single-section-per-category invariant holds.
type Plan struct {
	Sections []Section `json:"sections"`
}

// NewPlan builds a plan, rejecting duplicate section categories up front
// rather than relying on find-first lookup semantics later.
func NewPlan(sections []Section) (Plan, error) {
	seen := make(map[SectionCategory]string, len(sections))
	for _, s := range sections {
		if other, dup := seen[s.Category]; dup {
			return Plan{}, fmt.Errorf("%w: sections %q and %q share category %s", apperrors.ErrValidation, other, s.Label, s.Category)
		}
		seen[s.Category] = s.Label
	}
	return Plan{Sections: sections}, nil
}

// SectionByCategory returns the plan's section for a category. The second
// return value is false when the plan has no such section; callers treat that
// as an all-zero section, never as an error.
func (p Plan) SectionByCategory(category SectionCategory) (Section, bool) {
	for _, s := range p.Sections {
		if s.Category == category {
			return s, true
		}
	}
	return Section{}, false
}

// SectionByID returns the section with the given ID.
func (p Plan) SectionByID(sectionID string) (*Section, bool) {
	for i := range p.Sections {
		if p.Sections[i].SectionID == sectionID {
			return &p.Sections[i], true
		}
	}
	return nil, false
}
