package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Thresholds for classifying monthly spending against the goal, in percent.
var (
	closeToLimitThreshold = decimal.NewFromInt(80)
	overBudgetThreshold   = decimal.NewFromInt(100)
)

var oneHundred = decimal.NewFromInt(100)

// reportingService implements the ReportingSvcFacade interface.
type reportingService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewReportingService creates a new reporting service over the ledger repository.
func NewReportingService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{ledgerRepo: ledgerRepo}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetSummary computes full-precision income, expense and balance totals.
// Display rounding is a presentation concern and does not happen here.
func (s *reportingService) GetSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for summary: %w", err)
	}

	summary := &domain.Summary{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case domain.Income:
			summary.Income = summary.Income.Add(txn.Amount)
		case domain.Expense:
			summary.Expenses = summary.Expenses.Add(txn.Amount)
		}
	}
	summary.Balance = summary.Income.Sub(summary.Expenses)

	return summary, nil
}

// GetBudgetStatus computes expense totals for the given calendar month/year
// against the budget goal. Month/year equality is what buckets a transaction,
// not a rolling 30-day window.
func (s *reportingService) GetBudgetStatus(ctx context.Context, userID string, month time.Month, year int) (*domain.BudgetStatus, error) {
	goal, err := s.ledgerRepo.FindBudgetGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget goal for status: %w", err)
	}

	// No goal set is a distinct state, not an error.
	if !goal.IsPositive() {
		return &domain.BudgetStatus{GoalSet: false}, nil
	}

	txns, err := s.ledgerRepo.FindTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for status: %w", err)
	}

	spent := decimal.Zero
	for _, txn := range txns {
		if txn.Type != domain.Expense {
			continue
		}
		if txn.Date.Month() != month || txn.Date.Year() != year {
			continue
		}
		spent = spent.Add(txn.Amount)
	}

	percentage := spent.Div(goal).Mul(oneHundred)

	status := domain.BudgetOnTrack
	switch {
	case percentage.GreaterThan(overBudgetThreshold):
		status = domain.BudgetOverBudget
	case percentage.GreaterThan(closeToLimitThreshold):
		status = domain.BudgetCloseToLimit
	}

	return &domain.BudgetStatus{
		GoalSet:    true,
		Goal:       goal,
		Spent:      spent,
		Remaining:  goal.Sub(spent), // signed, negative when over budget
		Percentage: percentage,
		Status:     status,
	}, nil
}
