package services

import (
	"context"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/dto"
)

// AnalysisReaderSvc defines read operations for analyses
type AnalysisReaderSvc interface {
	// GetAnalysisByID retrieves an analysis including its plan.
	GetAnalysisByID(ctx context.Context, analysisID string) (*domain.Analysis, error)

	// ListAnalysesByClient retrieves all analyses of one client.
	ListAnalysesByClient(ctx context.Context, clientID string) ([]domain.Analysis, error)
}

// AnalysisWriterSvc defines write operations for analyses and their plans
type AnalysisWriterSvc interface {
	// CreateAnalysis creates a scenario seeded with the standard sections.
	CreateAnalysis(ctx context.Context, clientID string, req dto.CreateAnalysisRequest, userID string) (*domain.Analysis, error)

	// RenameAnalysis changes an analysis's display name.
	RenameAnalysis(ctx context.Context, analysisID string, req dto.RenameAnalysisRequest, userID string) (*domain.Analysis, error)

	// DuplicateAnalysis deep-copies an analysis and its plan under a new name.
	DuplicateAnalysis(ctx context.Context, analysisID string, req dto.DuplicateAnalysisRequest, userID string) (*domain.Analysis, error)

	// DeleteAnalysis removes an analysis and its plan entirely.
	DeleteAnalysis(ctx context.Context, analysisID string, userID string) error
}

// PlanEditorSvc defines the per-row and per-cell plan editing operations
type PlanEditorSvc interface {
	// ReplacePlan swaps the analysis's whole plan.
	ReplacePlan(ctx context.Context, analysisID string, req dto.ReplacePlanRequest, userID string) (*domain.Analysis, error)

	// AddLineItem appends a row, distributing the yearly total evenly.
	AddLineItem(ctx context.Context, analysisID string, req dto.AddLineItemRequest, userID string) (*domain.Analysis, error)

	// UpdateItemMonth edits a single month cell of a row.
	UpdateItemMonth(ctx context.Context, analysisID string, itemID string, req dto.UpdateItemMonthRequest, userID string) (*domain.Analysis, error)

	// SetItemYearTotal rescales a row's months proportionally to a new total.
	SetItemYearTotal(ctx context.Context, analysisID string, itemID string, req dto.SetItemYearTotalRequest, userID string) (*domain.Analysis, error)

	// RemoveLineItem deletes a row from its section.
	RemoveLineItem(ctx context.Context, analysisID string, itemID string, userID string) (*domain.Analysis, error)
}

// AnalysisSvcFacade combines all analysis-related service interfaces
type AnalysisSvcFacade interface {
	AnalysisReaderSvc
	AnalysisWriterSvc
	PlanEditorSvc
}
