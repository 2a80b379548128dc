package repositories

import (
	"context"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
)

// AnalysisReader defines read operations for analysis data
type AnalysisReader interface {
	// FindAnalysisByID retrieves a specific analysis including its plan.
	FindAnalysisByID(ctx context.Context, analysisID string) (*domain.Analysis, error)

	// ListAnalysesByClient retrieves all analyses of one client, newest first.
	ListAnalysesByClient(ctx context.Context, clientID string) ([]domain.Analysis, error)
}

// AnalysisWriter defines write operations for analysis data
type AnalysisWriter interface {
	// SaveAnalysis persists a new analysis with its plan.
	SaveAnalysis(ctx context.Context, analysis domain.Analysis) error

	// UpdateAnalysis updates an analysis, replacing the stored plan.
	UpdateAnalysis(ctx context.Context, analysis domain.Analysis) error

	// DeleteAnalysis removes an analysis and its plan entirely.
	DeleteAnalysis(ctx context.Context, analysisID string) error
}

// AnalysisRepositoryFacade combines all analysis-related repository interfaces
type AnalysisRepositoryFacade interface {
	AnalysisReader
	AnalysisWriter
}
