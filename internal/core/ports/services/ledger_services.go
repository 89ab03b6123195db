package services

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/mknzz/budget_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
)

// LedgerReaderSvc defines read operations over a user's ledger scope.
type LedgerReaderSvc interface {
	// ListTransactions returns the user's transactions with the given
	// filter and sort applied. The stored sequence is never mutated.
	ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) ([]domain.Transaction, error)

	// GetBudgetGoal returns the user's budget goal; zero means unset.
	GetBudgetGoal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// LedgerWriterSvc defines write operations over a user's ledger scope.
type LedgerWriterSvc interface {
	// AddTransaction validates and records a new transaction, assigning a
	// fresh unique ID. Returns apperrors.ErrValidation for malformed input;
	// a failed insert leaves the ledger untouched.
	AddTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes the matching transaction. An absent ID is
	// a no-op, not an error.
	DeleteTransaction(ctx context.Context, userID string, transactionID int64) error

	// ClearTransactions empties the user's ledger; the budget goal is untouched.
	ClearTransactions(ctx context.Context, userID string) error

	// SetBudgetGoal stores a positive budget goal. Non-positive values are
	// silently ignored, leaving the previous goal in place.
	SetBudgetGoal(ctx context.Context, userID string, goal decimal.Decimal) error

	// ReplaceAll bulk-initializes the user's scope from previously
	// exported data.
	ReplaceAll(ctx context.Context, userID string, transactions []domain.Transaction, goal decimal.Decimal) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
