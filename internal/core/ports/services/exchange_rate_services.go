package services

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReaderSvc defines read operations over the process-wide rate table.
type ExchangeRateReaderSvc interface {
	// GetRateTable returns the current table and its provenance,
	// refreshing first if no table has been fetched yet.
	GetRateTable(ctx context.Context) (domain.RateTable, domain.RateProvenance)

	// Convert converts amount between two currency codes, pivoting
	// through USD. Returns apperrors.ErrRateUnavailable when either code
	// is absent from the current table.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error)
}

// ExchangeRateRefresherSvc defines the refresh operation over the rate sources.
type ExchangeRateRefresherSvc interface {
	// RefreshRates replaces the rate table from the first source that
	// succeeds, ending in the guaranteed fallback table. It never fails;
	// the provenance tells the caller which source won.
	RefreshRates(ctx context.Context) (domain.RateTable, domain.RateProvenance)
}

// ExchangeRateSvcFacade combines all exchange-rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateRefresherSvc
}
