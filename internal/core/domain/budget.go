package domain

import "github.com/shopspring/decimal"

// Summary holds the aggregate totals derived from a ledger.
// Balance is always Income minus Expenses, with no intermediate rounding.
type Summary struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// BudgetStatusLevel classifies monthly spending against the budget goal.
type BudgetStatusLevel string

const (
	BudgetOnTrack      BudgetStatusLevel = "on-track"
	BudgetCloseToLimit BudgetStatusLevel = "close-to-limit"
	BudgetOverBudget   BudgetStatusLevel = "over-budget"
)

// BudgetStatus describes how the current month's expenses track against the
// budget goal. When GoalSet is false no goal is configured and Percentage and
// Status carry no meaning.
type BudgetStatus struct {
	GoalSet    bool
	Goal       decimal.Decimal
	Spent      decimal.Decimal
	Remaining  decimal.Decimal // Signed; negative once spending exceeds the goal
	Percentage decimal.Decimal
	Status     BudgetStatusLevel
}
