package planning_test

import (
	"testing"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/core/planning"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyTaxItem(t *testing.T) {
	tests := []struct {
		name string
		item domain.LineItem
		want domain.TaxItemKind
	}{
		{
			name: "explicit tag wins over contradicting label",
			item: domain.LineItem{Label: "Einkommensteuer", TaxKind: domain.TaxPrivateWithdrawal},
			want: domain.TaxPrivateWithdrawal,
		},
		{
			name: "account number match beats label keywords",
			item: domain.LineItem{AccountNumber: "7700", Label: "Einkommensteuer Vorauszahlung"},
			want: domain.TaxSVS,
		},
		{
			name: "svs label keyword, case-insensitive",
			item: domain.LineItem{Label: "SVS Beiträge laufend"},
			want: domain.TaxSVS,
		},
		{
			name: "sozialversicherung keyword",
			item: domain.LineItem{Label: "Sozialversicherung der Selbständigen"},
			want: domain.TaxSVS,
		},
		{
			name: "income tax keyword",
			item: domain.LineItem{Label: "Einkommensteuer 2025"},
			want: domain.TaxIncomeTax,
		},
		{
			name: "private withdrawal keyword",
			item: domain.LineItem{Label: "Privatentnahmen"},
			want: domain.TaxPrivateWithdrawal,
		},
		{
			name: "no match stays unclassified",
			item: domain.LineItem{Label: "Sonstige Abgaben"},
			want: domain.TaxUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planning.ClassifyTaxItem(tt.item))
		})
	}
}

func TestAutoTagTaxItems_TagsOnlyUntaggedRows(t *testing.T) {
	section := domain.Section{
		Category: domain.CategoryTaxAndPrivate,
		Items: []domain.LineItem{
			{ItemID: "a", Label: "SVS Beiträge"},
			{ItemID: "b", Label: "SVS Nachzahlung", TaxKind: domain.TaxIncomeTax}, // user's explicit choice stays
			{ItemID: "c", Label: "Sonstiges"},
		},
	}
	planning.AutoTagTaxItems(&section)

	assert.Equal(t, domain.TaxSVS, section.Items[0].TaxKind)
	assert.Equal(t, domain.TaxIncomeTax, section.Items[1].TaxKind)
	assert.Equal(t, domain.TaxUnclassified, section.Items[2].TaxKind)
}

func TestTaxBuckets_UnclassifiedExcludedFromResultButVisible(t *testing.T) {
	section := domain.Section{
		Category: domain.CategoryTaxAndPrivate,
		Items: []domain.LineItem{
			{ItemID: "svs", TaxKind: domain.TaxSVS, Values: map[int]decimal.Decimal{1: decimal.NewFromInt(500)}},
			{ItemID: "mystery", Label: "Sonstige Abgaben", Values: map[int]decimal.Decimal{1: decimal.NewFromInt(99)}},
		},
	}
	plan, _ := domain.NewPlan([]domain.Section{section})

	kf := planning.KeyFigures(plan, planning.FullYear)

	// The unclassified row contributes to the raw section total but not to
	// the result subtraction; the residual is reported separately.
	assert.True(t, kf.SVS.Equal(decimal.NewFromInt(500)))
	assert.True(t, kf.Unclassified.Equal(decimal.NewFromInt(99)))
	assert.True(t, kf.Result.Equal(decimal.NewFromInt(-500)))

	raw := planning.SectionTotal(plan, domain.CategoryTaxAndPrivate, planning.FullYear)
	assert.True(t, raw.Equal(decimal.NewFromInt(599)))
}
