package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/mknzz/budget_tracker_app/internal/repositories/kvstore"
	"github.com/mknzz/budget_tracker_app/internal/repositories/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_EmptyScopeYieldsEmptyLedger(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewLedgerRepository(kvstore.NewMemoryStore())

	txns, err := repo.FindTransactionsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, txns)

	goal, err := repo.FindBudgetGoal(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, goal.IsZero())
}

func TestLedgerRepository_TransactionsRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewLedgerRepository(kvstore.NewMemoryStore())

	txns := []domain.Transaction{
		{
			TransactionID: 1756300000001,
			Description:   "Groceries",
			Amount:        decimal.RequireFromString("82.40"),
			Type:          domain.Expense,
			Category:      domain.CategoryFood,
			Date:          time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2026, 8, 20, 14, 3, 0, 0, time.UTC),
			UserID:        "u1",
		},
		{
			TransactionID: 1756300000000,
			Description:   "Paycheck",
			Amount:        decimal.NewFromInt(2000),
			Type:          domain.Income,
			Category:      domain.CategorySalary,
			Date:          time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:     time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
			UserID:        "u1",
		},
	}

	require.NoError(t, repo.SaveTransactions(ctx, "u1", txns))

	loaded, err := repo.FindTransactionsByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Order and full decimal precision survive the round trip.
	assert.Equal(t, int64(1756300000001), loaded[0].TransactionID)
	assert.True(t, loaded[0].Amount.Equal(decimal.RequireFromString("82.40")))
	assert.Equal(t, domain.CategoryFood, loaded[0].Category)
	assert.Equal(t, "Paycheck", loaded[1].Description)
}

func TestLedgerRepository_ScopesAreIsolated(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewLedgerRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveTransactions(ctx, "u1", []domain.Transaction{{TransactionID: 1, Description: "Mine"}}))

	other, err := repo.FindTransactionsByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, repo.SaveBudgetGoal(ctx, "u1", decimal.NewFromInt(900)))
	goal, err := repo.FindBudgetGoal(ctx, "u2")
	require.NoError(t, err)
	assert.True(t, goal.IsZero())
}

func TestLedgerRepository_BudgetGoalStoredAsDecimalString(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	repo := ledger.NewLedgerRepository(store)

	require.NoError(t, repo.SaveBudgetGoal(ctx, "u1", decimal.RequireFromString("1500.50")))

	raw, ok, err := store.Get(ctx, "budgetGoal:u1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `"1500.5"`, string(raw))

	goal, err := repo.FindBudgetGoal(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, goal.Equal(decimal.RequireFromString("1500.50")))
}

func TestLedgerRepository_SaveEmptyOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := ledger.NewLedgerRepository(kvstore.NewMemoryStore())

	require.NoError(t, repo.SaveTransactions(ctx, "u1", []domain.Transaction{{TransactionID: 1}}))
	require.NoError(t, repo.SaveTransactions(ctx, "u1", []domain.Transaction{}))

	loaded, err := repo.FindTransactionsByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
