package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/mknzz/budget_tracker_app/internal/middleware"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ls portssvc.LedgerSvcFacade) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// RegisterTransactionRoutes registers routes related to the ledger.
func RegisterTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newTransactionHandler(ledgerService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.POST("/import", h.importLedger)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
		transactions.DELETE("", h.clearTransactions)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Validates and records a new income or expense transaction in the caller's ledger.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.ledgerService.AddTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to record transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record transaction"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions, optionally filtered by type/category and sorted by date or amount.
// @Tags transactions
// @Produce json
// @Param type query string false "income, expense or all"
// @Param category query string false "Category label or all"
// @Param sortBy query string false "date or amount (descending); anything else keeps stored order"
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID, params)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// importLedger godoc
// @Summary Import a ledger
// @Description Replaces the caller's ledger and budget goal wholesale with previously exported data.
// @Tags transactions
// @Accept json
// @Produce json
// @Param ledger body dto.ImportLedgerRequest true "Exported ledger"
// @Success 204 {object} nil
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/import [post]
func (h *transactionHandler) importLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ImportLedgerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txns := make([]domain.Transaction, 0, len(req.Transactions))
	for _, item := range req.Transactions {
		txn, err := item.ToDomain(userID)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Dates must be valid calendar dates (YYYY-MM-DD)"})
			return
		}
		txns = append(txns, txn)
	}

	if err := h.ledgerService.ReplaceAll(c.Request.Context(), userID, txns, req.Goal); err != nil {
		logger.Error("Failed to import ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to import ledger"})
		return
	}

	c.Status(http.StatusNoContent)
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes the transaction with the given ID. Deleting an absent ID succeeds.
// @Tags transactions
// @Produce json
// @Param transactionID path int true "Transaction ID"
// @Success 204 {object} nil
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactionID, err := strconv.ParseInt(c.Param("transactionID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Transaction ID must be an integer"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete transaction"})
		return
	}

	c.Status(http.StatusNoContent)
}

// clearTransactions godoc
// @Summary Delete all transactions
// @Description Empties the caller's ledger. The budget goal is untouched.
// @Tags transactions
// @Produce json
// @Success 204 {object} nil
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/transactions [delete]
func (h *transactionHandler) clearTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.ledgerService.ClearTransactions(c.Request.Context(), userID); err != nil {
		logger.Error("Failed to clear ledger", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear ledger"})
		return
	}

	c.Status(http.StatusNoContent)
}
