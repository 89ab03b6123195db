package dto

import (
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SetBudgetGoalRequest defines the data for setting the monthly budget goal.
type SetBudgetGoalRequest struct {
	Goal decimal.Decimal `json:"goal" binding:"required"`
}

// BudgetGoalResponse defines the stored budget goal. GoalSet is false when no
// positive goal has been saved for the scope.
type BudgetGoalResponse struct {
	Goal    decimal.Decimal `json:"goal"`
	GoalSet bool            `json:"goalSet"`
}

// SummaryResponse defines the aggregate totals returned for a ledger.
type SummaryResponse struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO.
func ToSummaryResponse(s *domain.Summary) SummaryResponse {
	return SummaryResponse{
		Income:   s.Income,
		Expenses: s.Expenses,
		Balance:  s.Balance,
	}
}

// BudgetStatusResponse defines the monthly budget tracking data. Percentage
// and status are omitted while no goal is set; that state is reported via
// GoalSet, not as an error.
type BudgetStatusResponse struct {
	GoalSet    bool             `json:"goalSet"`
	Goal       decimal.Decimal  `json:"goal"`
	Spent      decimal.Decimal  `json:"spent"`
	Remaining  decimal.Decimal  `json:"remaining"`
	Percentage *decimal.Decimal `json:"percentage,omitempty"`
	Status     string           `json:"status,omitempty"`
}

// ToBudgetStatusResponse converts a domain.BudgetStatus to BudgetStatusResponse DTO.
func ToBudgetStatusResponse(bs *domain.BudgetStatus) BudgetStatusResponse {
	resp := BudgetStatusResponse{
		GoalSet:   bs.GoalSet,
		Goal:      bs.Goal,
		Spent:     bs.Spent,
		Remaining: bs.Remaining,
	}
	if bs.GoalSet {
		pct := bs.Percentage
		resp.Percentage = &pct
		resp.Status = string(bs.Status)
	}
	return resp
}
