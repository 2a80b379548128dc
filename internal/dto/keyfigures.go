package dto

import (
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// KeyFiguresResponse mirrors domain.KeyFigures for API consumers. Consumers
// must treat the subtotals as canonical and never recompute them.
type KeyFiguresResponse struct {
	Revenue            decimal.Decimal `json:"revenue"`
	Material           decimal.Decimal `json:"material"`
	DB1                decimal.Decimal `json:"db1"`
	Personnel          decimal.Decimal `json:"personnel"`
	DB2                decimal.Decimal `json:"db2"`
	Depreciation       decimal.Decimal `json:"depreciation"`
	Operating          decimal.Decimal `json:"operating"`
	Admin              decimal.Decimal `json:"admin"`
	Sales              decimal.Decimal `json:"sales"`
	Finance            decimal.Decimal `json:"finance"`
	EBIT               decimal.Decimal `json:"ebit"`
	EBITDA             decimal.Decimal `json:"ebitda"`
	EGT                decimal.Decimal `json:"egt"`
	SVS                decimal.Decimal `json:"svs"`
	IncomeTax          decimal.Decimal `json:"incomeTax"`
	PrivateWithdrawals decimal.Decimal `json:"privateWithdrawals"`
	Unclassified       decimal.Decimal `json:"unclassified"`
	Result             decimal.Decimal `json:"result"`
	TotalFixedCosts    decimal.Decimal `json:"totalFixedCosts"`
}

// ToKeyFiguresResponse converts a domain.KeyFigures snapshot
func ToKeyFiguresResponse(kf domain.KeyFigures) KeyFiguresResponse {
	return KeyFiguresResponse{
		Revenue:            kf.Revenue,
		Material:           kf.Material,
		DB1:                kf.DB1,
		Personnel:          kf.Personnel,
		DB2:                kf.DB2,
		Depreciation:       kf.Depreciation,
		Operating:          kf.Operating,
		Admin:              kf.Admin,
		Sales:              kf.Sales,
		Finance:            kf.Finance,
		EBIT:               kf.EBIT,
		EBITDA:             kf.EBITDA,
		EGT:                kf.EGT,
		SVS:                kf.SVS,
		IncomeTax:          kf.IncomeTax,
		PrivateWithdrawals: kf.PrivateWithdrawals,
		Unclassified:       kf.Unclassified,
		Result:             kf.Result,
		TotalFixedCosts:    kf.TotalFixedCosts,
	}
}

// KeyFiguresParams selects the period for a key-figure query.
type KeyFiguresParams struct {
	Month int `form:"month" binding:"omitempty,planmonth"` // absent = full year
}

// MonthlyKeyFiguresResponse carries the full-year snapshot plus one snapshot
// per month for the monthly grid view.
type MonthlyKeyFiguresResponse struct {
	FullYear KeyFiguresResponse   `json:"fullYear"`
	Months   []KeyFiguresResponse `json:"months"` // index 0 = January
}
