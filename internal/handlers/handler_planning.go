package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
)

// planningHandler serves the derived figures of stored analyses.
type planningHandler struct {
	planningService portssvc.PlanningSvcFacade
	defaultHorizon  int
}

// newPlanningHandler creates a new planningHandler.
func newPlanningHandler(ps portssvc.PlanningSvcFacade, defaultHorizon int) *planningHandler {
	return &planningHandler{
		planningService: ps,
		defaultHorizon:  defaultHorizon,
	}
}

// registerPlanningRoutes registers the key-figure and forecast routes under
// the analyses group.
func registerPlanningRoutes(analyses *gin.RouterGroup, planningService portssvc.PlanningSvcFacade, defaultHorizon int) {
	h := newPlanningHandler(planningService, defaultHorizon)

	analyses.GET("/:id/keyfigures", h.getKeyFigures)
	analyses.GET("/:id/keyfigures/monthly", h.getMonthlyKeyFigures)
	analyses.POST("/:id/forecast", h.forecast)
}

// getKeyFigures godoc
// @Summary Get key figures
// @Description Computes the subtotal chain for one month or the full year
// @Tags planning
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   month query int false "Month 1-12; omitted = full year"
// @Success 200 {object} dto.KeyFiguresResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/keyfigures [get]
func (h *planningHandler) getKeyFigures(c *gin.Context) {
	var params dto.KeyFiguresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month: must be 1-12"})
		return
	}

	// An absent month binds to zero, which is planning.FullYear.
	figures, err := h.planningService.GetKeyFigures(c.Request.Context(), c.Param("id"), params.Month)
	if err != nil {
		writeAnalysisError(c, err, "compute key figures")
		return
	}

	c.JSON(http.StatusOK, dto.ToKeyFiguresResponse(*figures))
}

// getMonthlyKeyFigures godoc
// @Summary Get the monthly key-figure grid
// @Description Computes the full-year snapshot plus all twelve months in one pass
// @Tags planning
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Success 200 {object} dto.MonthlyKeyFiguresResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/keyfigures/monthly [get]
func (h *planningHandler) getMonthlyKeyFigures(c *gin.Context) {
	grid, err := h.planningService.GetMonthlyKeyFigures(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAnalysisError(c, err, "compute monthly key figures")
		return
	}

	resp := dto.MonthlyKeyFiguresResponse{
		FullYear: dto.ToKeyFiguresResponse(grid[0]),
		Months:   make([]dto.KeyFiguresResponse, 12),
	}
	for month := 1; month <= 12; month++ {
		resp.Months[month-1] = dto.ToKeyFiguresResponse(grid[month])
	}

	c.JSON(http.StatusOK, resp)
}

// forecast godoc
// @Summary Project the plan over several years
// @Description Applies compound growth per category and re-derives the chain each year
// @Tags planning
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   forecast body dto.ForecastRequest true "Growth rates and horizon (omitted = configured default)"
// @Success 200 {object} dto.ForecastResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/forecast [post]
func (h *planningHandler) forecast(c *gin.Context) {
	var req dto.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	horizon := req.Horizon
	if horizon == 0 {
		horizon = h.defaultHorizon
	}

	projected, err := h.planningService.Forecast(c.Request.Context(), c.Param("id"), req.Rates.ToGrowthRates(), horizon)
	if err != nil {
		writeAnalysisError(c, err, "compute forecast")
		return
	}

	c.JSON(http.StatusOK, dto.ToForecastResponse(projected))
}
