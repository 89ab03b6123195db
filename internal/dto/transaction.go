package dto

import (
	"time"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Date uses the calendar form YYYY-MM-DD, matching the date input the form
// layer submits.
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Type        string          `json:"type" binding:"required,txntype"`
	Category    string          `json:"category" binding:"required"`
	Date        string          `json:"date" binding:"required"`
}

// ListTransactionsParams defines query parameters for listing transactions.
// Type and category equal to "all" (or absent) disable that predicate; an
// unrecognized sortBy keeps the stored order.
type ListTransactionsParams struct {
	Type     string `form:"type,default=all"`
	Category string `form:"category,default=all"`
	SortBy   string `form:"sortBy"`
}

// ImportTransaction is one previously exported ledger entry, supplied when a
// scope is bulk-loaded.
type ImportTransaction struct {
	TransactionID int64           `json:"transactionID" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Type          string          `json:"type" binding:"required,txntype"`
	Category      string          `json:"category" binding:"required"`
	Date          string          `json:"date" binding:"required"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToDomain converts the import entry to a domain.Transaction.
func (r ImportTransaction) ToDomain(userID string) (domain.Transaction, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.Transaction{
		TransactionID: r.TransactionID,
		Description:   r.Description,
		Amount:        r.Amount,
		Type:          domain.TransactionType(r.Type),
		Category:      domain.Category(r.Category),
		Date:          date,
		CreatedAt:     r.CreatedAt,
		UserID:        userID,
	}, nil
}

// ImportLedgerRequest replaces a user's ledger and budget goal wholesale.
type ImportLedgerRequest struct {
	Transactions []ImportTransaction `json:"transactions" binding:"required"`
	Goal         decimal.Decimal     `json:"goal"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID int64           `json:"transactionID"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	CategoryLabel string          `json:"categoryLabel"`
	Date          string          `json:"date"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Category:      string(txn.Category),
		CategoryLabel: txn.Category.DisplayName(),
		Date:          txn.Date.Format("2006-01-02"),
		CreatedAt:     txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice
// of TransactionResponse DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
