package planning

import (
	"strings"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// svsAccountNumber is the default chart-of-accounts code for the
// social-insurance levy; an exact match wins over any label keyword.
const svsAccountNumber = "7700"

var (
	svsKeywords        = []string{"svs", "sva", "sozialversicherung"}
	incomeTaxKeywords  = []string{"einkommensteuer", "income tax", "est-vorauszahlung"}
	withdrawalKeywords = []string{"privat", "entnahme", "withdrawal"}
)

// ClassifyTaxItem resolves the bucket of a tax/private row. An explicit tag
// wins; untagged rows fall through the legacy heuristic: exact account-number
// match for the social-insurance code, then case-insensitive label keywords in
// svs -> income tax -> private withdrawal order. Rows matching nothing stay
// TaxUnclassified and are excluded from the result subtraction.
func ClassifyTaxItem(item domain.LineItem) domain.TaxItemKind {
	if item.TaxKind != "" && item.TaxKind != domain.TaxUnclassified {
		return item.TaxKind
	}
	if item.AccountNumber == svsAccountNumber {
		return domain.TaxSVS
	}
	label := strings.ToLower(item.Label)
	for _, kw := range svsKeywords {
		if strings.Contains(label, kw) {
			return domain.TaxSVS
		}
	}
	for _, kw := range incomeTaxKeywords {
		if strings.Contains(label, kw) {
			return domain.TaxIncomeTax
		}
	}
	for _, kw := range withdrawalKeywords {
		if strings.Contains(label, kw) {
			return domain.TaxPrivateWithdrawal
		}
	}
	return domain.TaxUnclassified
}

// AutoTagTaxItems tags every untagged row of a tax/private section in place.
// Run once when a plan is stored so classification is a stored fact, not a
// per-computation inference.
func AutoTagTaxItems(section *domain.Section) {
	if section.Category != domain.CategoryTaxAndPrivate {
		return
	}
	for i := range section.Items {
		if section.Items[i].TaxKind == "" || section.Items[i].TaxKind == domain.TaxUnclassified {
			section.Items[i].TaxKind = ClassifyTaxItem(section.Items[i])
		}
	}
}

// TaxBuckets splits a tax/private section's period totals into the svs,
// income-tax and private-withdrawal buckets plus the unclassified residual.
// month is 1-12 or FullYear.
func TaxBuckets(section domain.Section, month int) (svs, incomeTax, private, unclassified decimal.Decimal) {
	svs, incomeTax, private, unclassified = decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, item := range section.Items {
		var amount decimal.Decimal
		if month >= 1 && month <= 12 {
			amount = item.MonthValue(month)
		} else {
			amount = item.YearTotal()
		}
		switch ClassifyTaxItem(item) {
		case domain.TaxSVS:
			svs = svs.Add(amount)
		case domain.TaxIncomeTax:
			incomeTax = incomeTax.Add(amount)
		case domain.TaxPrivateWithdrawal:
			private = private.Add(amount)
		default:
			unclassified = unclassified.Add(amount)
		}
	}
	return svs.Round(2), incomeTax.Round(2), private.Round(2), unclassified.Round(2)
}
