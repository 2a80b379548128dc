package dto

import (
	"github.com/plandesk/biz_planning_app/internal/core/domain"
)

// ForecastRatesRequest carries one growth percentage per category. Rates
// below -100 are rejected here; the projector assumes validated input.
type ForecastRatesRequest struct {
	Revenue   float64 `json:"revenue" binding:"gte=-100"`
	Material  float64 `json:"material" binding:"gte=-100"`
	Personnel float64 `json:"personnel" binding:"gte=-100"`
	Operating float64 `json:"operating" binding:"gte=-100"` // also applied to admin and sales
	Finance   float64 `json:"finance" binding:"gte=-100"`
	Tax       float64 `json:"tax" binding:"gte=-100"`
}

// ForecastRequest configures a projection run. A zero horizon means the
// server's configured default.
type ForecastRequest struct {
	Rates   ForecastRatesRequest `json:"rates"`
	Horizon int                  `json:"horizon" binding:"omitempty,gte=1,lte=30"`
}

// ToGrowthRates converts the request into the immutable domain value object.
func (r ForecastRatesRequest) ToGrowthRates() domain.ForecastGrowthRates {
	return domain.ForecastGrowthRates{
		Revenue:   r.Revenue,
		Material:  r.Material,
		Personnel: r.Personnel,
		Operating: r.Operating,
		Finance:   r.Finance,
		Tax:       r.Tax,
	}
}

// ForecastYearResponse is one projected year.
type ForecastYearResponse struct {
	YearOffset int                `json:"yearOffset"` // 0 = base year
	Figures    KeyFiguresResponse `json:"figures"`
}

// ForecastResponse is the ordered projection, base year first.
type ForecastResponse struct {
	Years []ForecastYearResponse `json:"years"`
}

// ToForecastResponse converts projected snapshots, index = year offset
func ToForecastResponse(projected []domain.KeyFigures) ForecastResponse {
	years := make([]ForecastYearResponse, len(projected))
	for i, kf := range projected {
		years[i] = ForecastYearResponse{YearOffset: i, Figures: ToKeyFiguresResponse(kf)}
	}
	return ForecastResponse{Years: years}
}
