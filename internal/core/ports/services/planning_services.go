package services

import (
	"context"

	"github.com/plandesk/biz_planning_app/internal/core/domain"
)

// PlanningSvcFacade exposes the derived figures of a stored analysis. All
// computation happens in the pure planning core; this service only loads the
// plan and delegates.
type PlanningSvcFacade interface {
	// GetKeyFigures computes one snapshot; month is 1-12 or planning.FullYear.
	GetKeyFigures(ctx context.Context, analysisID string, month int) (*domain.KeyFigures, error)

	// GetMonthlyKeyFigures computes the year snapshot plus all twelve months.
	GetMonthlyKeyFigures(ctx context.Context, analysisID string) (*[13]domain.KeyFigures, error)

	// Forecast projects the analysis's base year over the horizon.
	Forecast(ctx context.Context, analysisID string, rates domain.ForecastGrowthRates, horizon int) ([]domain.KeyFigures, error)
}
