package repositories

import (
	"context"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
)

// RateSource is one data source for USD-based exchange rates. Sources are
// attempted in priority order; each invocation gets a single try per source.
type RateSource interface {
	// Provenance identifies the source in advisory/status output.
	Provenance() domain.RateProvenance

	// FetchLatest obtains the current rate table. Implementations must
	// return a table containing USD at exactly 1 on success.
	FetchLatest(ctx context.Context) (domain.RateTable, error)
}
