package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/mknzz/budget_tracker_app/internal/middleware"
)

// reportingHandler handles summary and budget status requests.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingSvcFacade, ls portssvc.LedgerSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs, ledgerService: ls}
}

// registerReportingRoutes registers summary and budget routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade, ledgerService portssvc.LedgerSvcFacade) {
	h := newReportingHandler(reportingService, ledgerService)

	rg.GET("/summary", h.getSummary)

	budget := rg.Group("/budget")
	{
		budget.GET("/goal", h.getBudgetGoal)
		budget.PUT("/goal", h.setBudgetGoal)
		budget.GET("/status", h.getBudgetStatus)
	}
}

// getSummary godoc
// @Summary Ledger summary
// @Description Returns income, expense and balance totals for the caller's full ledger.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.reportingService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getBudgetGoal godoc
// @Summary Get budget goal
// @Description Returns the caller's stored monthly budget goal; goalSet is false when none is set.
// @Tags reporting
// @Produce json
// @Success 200 {object} dto.BudgetGoalResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/budget/goal [get]
func (h *reportingHandler) getBudgetGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	goal, err := h.ledgerService.GetBudgetGoal(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to load budget goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load budget goal"})
		return
	}

	c.JSON(http.StatusOK, dto.BudgetGoalResponse{Goal: goal, GoalSet: goal.IsPositive()})
}

// setBudgetGoal godoc
// @Summary Set budget goal
// @Description Sets the caller's monthly budget goal. Non-positive values are ignored and leave the previous goal in place.
// @Tags reporting
// @Accept json
// @Produce json
// @Param goal body dto.SetBudgetGoalRequest true "Budget goal"
// @Success 204 {object} nil
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/budget/goal [put]
func (h *reportingHandler) setBudgetGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetBudgetGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.SetBudgetGoal(c.Request.Context(), userID, req.Goal); err != nil {
		logger.Error("Failed to set budget goal", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set budget goal"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getBudgetStatus godoc
// @Summary Monthly budget status
// @Description Returns spending against the budget goal for the given month/year (defaults to the current month).
// @Tags reporting
// @Produce json
// @Param month query int false "Month (1-12)"
// @Param year query int false "Year"
// @Success 200 {object} dto.BudgetStatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/budget/status [get]
func (h *reportingHandler) getBudgetStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	now := time.Now()
	month := int(now.Month())
	year := now.Year()

	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Month must be an integer between 1 and 12"})
			return
		}
		month = parsed
	}
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Year must be an integer"})
			return
		}
		year = parsed
	}

	status, err := h.reportingService.GetBudgetStatus(c.Request.Context(), userID, time.Month(month), year)
	if err != nil {
		logger.Error("Failed to compute budget status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute budget status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBudgetStatusResponse(status))
}
