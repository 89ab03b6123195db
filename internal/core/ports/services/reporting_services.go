package services

import (
	"context"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
)

// ReportingSvcFacade derives read-side views over a user's ledger.
type ReportingSvcFacade interface {
	// GetSummary computes income, expense and balance totals for the
	// user's full ledger. An empty ledger yields an all-zero summary.
	GetSummary(ctx context.Context, userID string) (*domain.Summary, error)

	// GetBudgetStatus computes spending against the budget goal for the
	// given calendar month and year (month/year equality, not a rolling
	// window). With no goal set it returns the distinct GoalSet=false
	// state rather than an error.
	GetBudgetStatus(ctx context.Context, userID string, month time.Month, year int) (*domain.BudgetStatus, error)
}
