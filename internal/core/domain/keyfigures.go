package domain

import (
	"github.com/shopspring/decimal"
)

// KeyFigures is the derived snapshot for one fiscal period (full year or a
// single month). It is computed on demand and never persisted.
//
// The derivation order is fixed: DB2 uses DB1, EBIT precedes EBITDA and EGT,
// and Result is the only figure subtracting the three tax/private components.
type KeyFigures struct {
	Revenue      decimal.Decimal `json:"revenue"`
	Material     decimal.Decimal `json:"material"`
	DB1          decimal.Decimal `json:"db1"` // contribution margin 1: revenue - material
	Personnel    decimal.Decimal `json:"personnel"`
	DB2          decimal.Decimal `json:"db2"` // contribution margin 2: db1 - personnel
	Depreciation decimal.Decimal `json:"depreciation"`
	Operating    decimal.Decimal `json:"operating"`
	Admin        decimal.Decimal `json:"admin"`
	Sales        decimal.Decimal `json:"sales"`
	Finance      decimal.Decimal `json:"finance"`
	EBIT         decimal.Decimal `json:"ebit"`
	EBITDA       decimal.Decimal `json:"ebitda"`
	EGT          decimal.Decimal `json:"egt"` // result before taxes and private draws

	SVS                decimal.Decimal `json:"svs"`
	IncomeTax          decimal.Decimal `json:"incomeTax"`
	PrivateWithdrawals decimal.Decimal `json:"privateWithdrawals"`
	// Unclassified is the part of the tax/private section total that matched
	// no bucket. It is excluded from Result; exposing it lets consumers show
	// the total/subtotal mismatch instead of hiding it.
	Unclassified decimal.Decimal `json:"unclassified"`

	Result          decimal.Decimal `json:"result"`
	TotalFixedCosts decimal.Decimal `json:"totalFixedCosts"`
}

// ForecastGrowthRates holds one percentage-per-annum growth rate per category
// bucket. The Operating rate is reused for Administration and Sales; the
// projector has no independent knob for those. Treat values as immutable per
// projection call; never share a mutated instance across scenarios.
type ForecastGrowthRates struct {
	Revenue   float64 `json:"revenue"`
	Material  float64 `json:"material"`
	Personnel float64 `json:"personnel"`
	Operating float64 `json:"operating"`
	Finance   float64 `json:"finance"`
	Tax       float64 `json:"tax"`
}
