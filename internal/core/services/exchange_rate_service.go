package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mknzz/budget_tracker_app/internal/apperrors"
	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/mknzz/budget_tracker_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const usdCode = "USD"

// exchangeRateService holds the process-wide rate table and implements the
// ExchangeRateSvcFacade interface. The table is replaced wholesale on each
// successful refresh, never merged.
type exchangeRateService struct {
	BaseService
	sources []portsrepo.RateSource

	mu         sync.RWMutex
	table      domain.RateTable
	provenance domain.RateProvenance
}

// NewExchangeRateService creates a new exchange rate service over the given
// sources, attempted in slice order. The last source is expected to be the
// fixed fallback table so a refresh can never leave the table empty.
func NewExchangeRateService(sources []portsrepo.RateSource) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{sources: sources}
}

// Ensure exchangeRateService implements the ExchangeRateSvcFacade interface
var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// RefreshRates walks the source chain: one try per source, network errors and
// non-success responses treated identically. The first success replaces the
// table atomically. Failure never escapes this method.
func (s *exchangeRateService) RefreshRates(ctx context.Context) (domain.RateTable, domain.RateProvenance) {
	for _, source := range s.sources {
		table, err := source.FetchLatest(ctx)
		if err != nil {
			s.LogWarn(ctx, "Rate source failed, trying next",
				slog.String("source", string(source.Provenance())),
				slog.String("error", err.Error()))
			continue
		}

		// The uniform table shape always has USD pinned at 1.
		table[usdCode] = decimal.NewFromInt(1)

		s.mu.Lock()
		s.table = table
		s.provenance = source.Provenance()
		s.mu.Unlock()

		s.LogInfo(ctx, "Rate table refreshed",
			slog.String("source", string(source.Provenance())),
			slog.Int("currency_count", len(table)))
		return table.Clone(), source.Provenance()
	}

	// All configured sources failed; keep whatever table we already have.
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), s.provenance
}

// GetRateTable returns the current table, refreshing first if nothing has
// been fetched yet this session.
func (s *exchangeRateService) GetRateTable(ctx context.Context) (domain.RateTable, domain.RateProvenance) {
	s.mu.RLock()
	table, provenance := s.table, s.provenance
	s.mu.RUnlock()

	if len(table) == 0 {
		return s.RefreshRates(ctx)
	}
	return table.Clone(), provenance
}

// Convert converts amount between two currency codes by pivoting through USD:
// two multiplicative steps, no direct cross-rate table.
func (s *exchangeRateService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}

	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	table, _ := s.GetRateTable(ctx)
	if !table.Has(fromCode) {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s", apperrors.ErrRateUnavailable, fromCode)
	}
	if !table.Has(toCode) {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s", apperrors.ErrRateUnavailable, toCode)
	}

	usdAmount := amount
	if fromCode != usdCode {
		usdAmount = amount.Div(table[fromCode])
	}
	result := usdAmount
	if toCode != usdCode {
		result = usdAmount.Mul(table[toCode])
	}

	return result, nil
}
