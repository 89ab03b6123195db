// Package ledger implements the ledger, budget and user repositories over the
// key-value persistence collaborator.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// Storage keys mirror the original browser-local layout: one ledger blob and
// one budget goal string per user scope.
const (
	ledgerKeyPrefix = "ledger:"
	budgetKeyPrefix = "budgetGoal:"
)

// LedgerRepository persists per-user transaction sequences and budget goals.
type LedgerRepository struct {
	store portsrepo.KVStore
}

// NewLedgerRepository creates a LedgerRepository over the given store.
func NewLedgerRepository(store portsrepo.KVStore) *LedgerRepository {
	return &LedgerRepository{store: store}
}

// Ensure LedgerRepository implements the LedgerRepositoryFacade interface
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	raw, ok, err := r.store.Get(ctx, ledgerKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger for user %s: %w", userID, err)
	}
	if !ok {
		// First load of a scope starts with an empty ledger.
		return []domain.Transaction{}, nil
	}

	var txns []domain.Transaction
	if err := json.Unmarshal(raw, &txns); err != nil {
		return nil, fmt.Errorf("failed to decode ledger for user %s: %w", userID, err)
	}
	return txns, nil
}

func (r *LedgerRepository) SaveTransactions(ctx context.Context, userID string, transactions []domain.Transaction) error {
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode ledger for user %s: %w", userID, err)
	}
	if err := r.store.Set(ctx, ledgerKeyPrefix+userID, raw); err != nil {
		return fmt.Errorf("failed to write ledger for user %s: %w", userID, err)
	}
	return nil
}

func (r *LedgerRepository) FindBudgetGoal(ctx context.Context, userID string) (decimal.Decimal, error) {
	raw, ok, err := r.store.Get(ctx, budgetKeyPrefix+userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read budget goal for user %s: %w", userID, err)
	}
	if !ok {
		return decimal.Zero, nil
	}

	// The goal is stored as a decimal string.
	var goalStr string
	if err := json.Unmarshal(raw, &goalStr); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode budget goal for user %s: %w", userID, err)
	}
	goal, err := decimal.NewFromString(goalStr)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse budget goal for user %s: %w", userID, err)
	}
	return goal, nil
}

func (r *LedgerRepository) SaveBudgetGoal(ctx context.Context, userID string, goal decimal.Decimal) error {
	raw, err := json.Marshal(goal.String())
	if err != nil {
		return fmt.Errorf("failed to encode budget goal for user %s: %w", userID, err)
	}
	if err := r.store.Set(ctx, budgetKeyPrefix+userID, raw); err != nil {
		return fmt.Errorf("failed to write budget goal for user %s: %w", userID, err)
	}
	return nil
}
