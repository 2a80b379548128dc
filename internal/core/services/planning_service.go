package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/plandesk/biz_planning_app/internal/apperrors"
	"github.com/plandesk/biz_planning_app/internal/core/domain"
	"github.com/plandesk/biz_planning_app/internal/core/planning"
	portsrepo "github.com/plandesk/biz_planning_app/internal/core/ports/repositories"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
)

// planningService loads stored plans and delegates all computation to the
// pure planning package.
type planningService struct {
	BaseService
	analysisRepo portsrepo.AnalysisReader
}

// NewPlanningService creates a new planning service with the provided dependencies
func NewPlanningService(analysisRepo portsrepo.AnalysisReader) portssvc.PlanningSvcFacade {
	return &planningService{analysisRepo: analysisRepo}
}

var _ portssvc.PlanningSvcFacade = (*planningService)(nil)

func (s *planningService) loadPlan(ctx context.Context, analysisID string) (domain.Plan, error) {
	analysis, err := s.analysisRepo.FindAnalysisByID(ctx, analysisID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load analysis for computation",
				slog.String("analysis_id", analysisID))
		}
		return domain.Plan{}, err
	}
	return analysis.Plan, nil
}

func (s *planningService) GetKeyFigures(ctx context.Context, analysisID string, month int) (*domain.KeyFigures, error) {
	plan, err := s.loadPlan(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	figures := planning.KeyFigures(plan, month)
	return &figures, nil
}

func (s *planningService) GetMonthlyKeyFigures(ctx context.Context, analysisID string) (*[13]domain.KeyFigures, error) {
	plan, err := s.loadPlan(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	grid := planning.MonthlyKeyFigures(plan)
	return &grid, nil
}

func (s *planningService) Forecast(ctx context.Context, analysisID string, rates domain.ForecastGrowthRates, horizon int) ([]domain.KeyFigures, error) {
	plan, err := s.loadPlan(ctx, analysisID)
	if err != nil {
		return nil, err
	}

	projection := planning.Project(plan, rates, horizon)

	s.LogDebug(ctx, "Forecast computed",
		slog.String("analysis_id", analysisID),
		slog.Int("horizon", horizon))
	return projection, nil
}
