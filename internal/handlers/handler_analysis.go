package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plandesk/biz_planning_app/internal/apperrors"
	portssvc "github.com/plandesk/biz_planning_app/internal/core/ports/services"
	"github.com/plandesk/biz_planning_app/internal/dto"
	"github.com/plandesk/biz_planning_app/internal/middleware"
)

// analysisHandler handles HTTP requests related to analyses and plan editing.
type analysisHandler struct {
	analysisService portssvc.AnalysisSvcFacade
}

// newAnalysisHandler creates a new analysisHandler.
func newAnalysisHandler(as portssvc.AnalysisSvcFacade) *analysisHandler {
	return &analysisHandler{
		analysisService: as,
	}
}

// registerAnalysisRoutes registers analysis, plan-editing and planning-report routes.
func registerAnalysisRoutes(rg *gin.RouterGroup, analysisService portssvc.AnalysisSvcFacade, planningService portssvc.PlanningSvcFacade, defaultHorizon int) {
	h := newAnalysisHandler(analysisService)

	analyses := rg.Group("/analyses")
	{
		analyses.GET("/:id", h.getAnalysis)
		analyses.PUT("/:id", h.renameAnalysis)
		analyses.POST("/:id/duplicate", h.duplicateAnalysis)
		analyses.DELETE("/:id", h.deleteAnalysis)

		analyses.PUT("/:id/plan", h.replacePlan)
		analyses.POST("/:id/plan/items", h.addLineItem)
		analyses.PUT("/:id/plan/items/:itemID/months", h.updateItemMonth)
		analyses.PUT("/:id/plan/items/:itemID/total", h.setItemYearTotal)
		analyses.DELETE("/:id/plan/items/:itemID", h.removeLineItem)
	}

	registerPlanningRoutes(analyses, planningService, defaultHorizon)
}

// writeAnalysisError maps common service errors to HTTP responses.
func writeAnalysisError(c *gin.Context, err error, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// getAnalysis godoc
// @Summary Get an analysis
// @Description Retrieves an analysis including its full plan
// @Tags analyses
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id} [get]
func (h *analysisHandler) getAnalysis(c *gin.Context) {
	analysis, err := h.analysisService.GetAnalysisByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeAnalysisError(c, err, "retrieve analysis")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}

// renameAnalysis godoc
// @Summary Rename an analysis
// @Description Changes an analysis's display name
// @Tags analyses
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   analysis body dto.RenameAnalysisRequest true "New name"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id} [put]
func (h *analysisHandler) renameAnalysis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RenameAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.RenameAnalysis(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "rename analysis")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisResponse(analysis))
}

// duplicateAnalysis godoc
// @Summary Duplicate an analysis
// @Description Deep-copies an analysis and its plan under a new name
// @Tags analyses
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   analysis body dto.DuplicateAnalysisRequest true "Name of the copy"
// @Success 201 {object} dto.AnalysisDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/duplicate [post]
func (h *analysisHandler) duplicateAnalysis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.DuplicateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.DuplicateAnalysis(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "duplicate analysis")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAnalysisDetailResponse(analysis))
}

// deleteAnalysis godoc
// @Summary Delete an analysis
// @Description Removes an analysis and its plan entirely
// @Tags analyses
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id} [delete]
func (h *analysisHandler) deleteAnalysis(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.analysisService.DeleteAnalysis(c.Request.Context(), c.Param("id"), userID); err != nil {
		writeAnalysisError(c, err, "delete analysis")
		return
	}

	c.Status(http.StatusNoContent)
}

// replacePlan godoc
// @Summary Replace an analysis's plan
// @Description Swaps the whole plan; duplicate section categories are rejected
// @Tags plan
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   plan body dto.ReplacePlanRequest true "New plan sections"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/plan [put]
func (h *analysisHandler) replacePlan(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ReplacePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.ReplacePlan(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "replace plan")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}

// addLineItem godoc
// @Summary Add a line item
// @Description Appends a row to a section, distributing the yearly total evenly
// @Tags plan
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   item body dto.AddLineItemRequest true "Line item details"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/plan/items [post]
func (h *analysisHandler) addLineItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.AddLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.AddLineItem(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "add line item")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}

// updateItemMonth godoc
// @Summary Edit a month cell
// @Description Sets one month's value of a line item; malformed input fails closed to zero
// @Tags plan
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   itemID path string true "Line item ID"
// @Param   cell body dto.UpdateItemMonthRequest true "Month and raw value"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/plan/items/{itemID}/months [put]
func (h *analysisHandler) updateItemMonth(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateItemMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.UpdateItemMonth(c.Request.Context(), c.Param("id"), c.Param("itemID"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "update month cell")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}

// setItemYearTotal godoc
// @Summary Set a line item's yearly total
// @Description Rescales the item's months proportionally to a new yearly total
// @Tags plan
// @Accept  json
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   itemID path string true "Line item ID"
// @Param   total body dto.SetItemYearTotalRequest true "New yearly total"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/plan/items/{itemID}/total [put]
func (h *analysisHandler) setItemYearTotal(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.SetItemYearTotalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	analysis, err := h.analysisService.SetItemYearTotal(c.Request.Context(), c.Param("id"), c.Param("itemID"), req, userID)
	if err != nil {
		writeAnalysisError(c, err, "set year total")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}

// removeLineItem godoc
// @Summary Remove a line item
// @Description Deletes a row from its section
// @Tags plan
// @Produce  json
// @Param   id path string true "Analysis ID"
// @Param   itemID path string true "Line item ID"
// @Success 200 {object} dto.AnalysisDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /analyses/{id}/plan/items/{itemID} [delete]
func (h *analysisHandler) removeLineItem(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	analysis, err := h.analysisService.RemoveLineItem(c.Request.Context(), c.Param("id"), c.Param("itemID"), userID)
	if err != nil {
		writeAnalysisError(c, err, "remove line item")
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalysisDetailResponse(analysis))
}
