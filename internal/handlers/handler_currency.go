package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/mknzz/budget_tracker_app/internal/middleware"
)

// currencyHandler handles rate table and conversion requests.
type currencyHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(es portssvc.ExchangeRateSvcFacade) *currencyHandler {
	return &currencyHandler{exchangeRateService: es}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newCurrencyHandler(exchangeRateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
	}
	rg.POST("/convert", h.convert)
}

// getRates godoc
// @Summary Current rate table
// @Description Returns the current USD-based rate table and which source produced it.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	table, provenance := h.exchangeRateService.GetRateTable(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, provenance))
}

// refreshRates godoc
// @Summary Refresh the rate table
// @Description Re-fetches rates through the source chain. Never fails; the fallback table is the terminal state.
// @Tags currencies
// @Produce json
// @Success 200 {object} dto.RateTableResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/rates/refresh [post]
func (h *currencyHandler) refreshRates(c *gin.Context) {
	table, provenance := h.exchangeRateService.RefreshRates(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToRateTableResponse(table, provenance))
}

// convert godoc
// @Summary Convert between currencies
// @Description Converts an amount between two currency codes, pivoting through USD.
// @Tags currencies
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Currency code not in the rate table"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/convert [post]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.exchangeRateService.Convert(c.Request.Context(), req.Amount, req.From, req.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to convert currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Conversion failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToConvertResponse(req.Amount, req.From, req.To, result))
}
