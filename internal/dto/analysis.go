package dto

import (
	"time"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
)

// CreateAnalysisRequest defines the data needed to create a planning scenario.
// The plan is seeded with the standard empty sections.
type CreateAnalysisRequest struct {
	Name     string `json:"name" binding:"required"`
	BaseYear int    `json:"baseYear" binding:"required,gte=2000,lte=2100"`
}

// RenameAnalysisRequest renames an existing analysis.
type RenameAnalysisRequest struct {
	Name string `json:"name" binding:"required"`
}

// DuplicateAnalysisRequest names the copy of an analysis.
type DuplicateAnalysisRequest struct {
	Name string `json:"name" binding:"required"`
}

// AnalysisResponse is the summary view of an analysis (no plan payload).
type AnalysisResponse struct {
	AnalysisID    string    `json:"analysisID"`
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	BaseYear      int       `json:"baseYear"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// AnalysisDetailResponse is the full view including the plan.
type AnalysisDetailResponse struct {
	AnalysisResponse
	Plan domain.Plan `json:"plan"`
}

// ToAnalysisResponse converts a domain.Analysis to its summary DTO
func ToAnalysisResponse(a *domain.Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:    a.AnalysisID,
		ClientID:      a.ClientID,
		Name:          a.Name,
		BaseYear:      a.BaseYear,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
}

// ToAnalysisDetailResponse converts a domain.Analysis including its plan
func ToAnalysisDetailResponse(a *domain.Analysis) AnalysisDetailResponse {
	return AnalysisDetailResponse{
		AnalysisResponse: ToAnalysisResponse(a),
		Plan:             a.Plan,
	}
}

// ToListAnalysisResponse converts a slice of domain.Analysis to summary DTOs
func ToListAnalysisResponse(analyses []domain.Analysis) []AnalysisResponse {
	res := make([]AnalysisResponse, len(analyses))
	for i, a := range analyses {
		res[i] = ToAnalysisResponse(&a)
	}
	return res
}
