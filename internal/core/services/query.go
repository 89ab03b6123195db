package services

import (
	"sort"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
)

// filterAll is the sentinel filter value meaning "no filtering".
const filterAll = "all"

// Sort keys understood by sortTransactions. Anything else keeps the input order.
const (
	SortByDate   = "date"
	SortByAmount = "amount"
)

// filterTransactions returns the transactions matching the type and category
// predicates, AND-combined. An empty or "all" value disables that predicate.
// The input slice is never mutated.
func filterTransactions(txns []domain.Transaction, txnType, category string) []domain.Transaction {
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txnType != "" && txnType != filterAll && string(txn.Type) != txnType {
			continue
		}
		if category != "" && category != filterAll && string(txn.Category) != category {
			continue
		}
		filtered = append(filtered, txn)
	}
	return filtered
}

// sortTransactions returns a copy of txns ordered by the given key:
// "date" sorts descending by calendar date, "amount" descending by amount.
// An unrecognized key is a no-op, returning the input order unchanged.
func sortTransactions(txns []domain.Transaction, sortBy string) []domain.Transaction {
	sorted := make([]domain.Transaction, len(txns))
	copy(sorted, txns)

	switch sortBy {
	case SortByDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date.After(sorted[j].Date)
		})
	case SortByAmount:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Amount.GreaterThan(sorted[j].Amount)
		})
	}

	return sorted
}
