package dto

import (
	"github.com/plandesk/biz_planning_app/internal/core/domain"
)

// ReplacePlanRequest replaces an analysis's whole plan. Sections are taken as
// sent; duplicate categories are rejected by the domain constructor.
type ReplacePlanRequest struct {
	Sections []domain.Section `json:"sections" binding:"required"`
}

// AddLineItemRequest appends a row to a section. The yearly total (may be
// empty or malformed; both parse to zero) is distributed evenly across the
// twelve months.
type AddLineItemRequest struct {
	SectionID     string             `json:"sectionID" binding:"required"`
	Label         string             `json:"label" binding:"required"`
	AccountNumber string             `json:"accountNumber"`
	Kind          domain.ItemKind    `json:"kind" binding:"required,oneof=REVENUE EXPENSE SUBTOTAL RESULT"`
	TaxKind       domain.TaxItemKind `json:"taxKind" binding:"omitempty,oneof=SVS INCOME_TAX PRIVATE_WITHDRAWAL UNCLASSIFIED"`
	YearlyTotal   string             `json:"yearlyTotal"`
}

// UpdateItemMonthRequest edits a single month cell. The value is a raw string
// from an editable cell; malformed input fails closed to zero rather than
// corrupting the plan.
type UpdateItemMonthRequest struct {
	Month int    `json:"month" binding:"required,planmonth"`
	Value string `json:"value"`
}

// SetItemYearTotalRequest edits an item's yearly total directly, triggering a
// proportional rescale of the twelve months.
type SetItemYearTotalRequest struct {
	Total string `json:"total"`
}
