package repositories

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerReader defines read operations for a user's ledger scope.
type LedgerReader interface {
	// FindTransactionsByUser retrieves the user's transactions in stored
	// order (newest-inserted-first). A user with no ledger yet gets an
	// empty slice, not an error.
	FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error)

	// FindBudgetGoal retrieves the user's budget goal; zero means unset.
	FindBudgetGoal(ctx context.Context, userID string) (decimal.Decimal, error)
}

// LedgerWriter defines write operations for a user's ledger scope.
type LedgerWriter interface {
	// SaveTransactions replaces the user's stored transaction sequence.
	SaveTransactions(ctx context.Context, userID string, transactions []domain.Transaction) error

	// SaveBudgetGoal persists the user's budget goal.
	SaveBudgetGoal(ctx context.Context, userID string, goal decimal.Decimal) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
