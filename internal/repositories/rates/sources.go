// Package rates implements the exchange rate data sources. Each source makes
// a single attempt per invocation; the refresh chain in the service layer is
// the retry strategy.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mknzz/budget_tracker_app/internal/core/domain"
	portsrepo "github.com/mknzz/budget_tracker_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultFetchTimeout bounds each attempt so a slow provider cannot suspend
// the refresh chain indefinitely.
const DefaultFetchTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	return &http.Client{Timeout: timeout}
}

// fetchJSON performs a single GET and decodes the body into out. A
// non-success status is an error just like a transport failure; the caller
// treats both identically and falls through to the next source.
func fetchJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("rates request returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode rates response: %w", err)
	}
	return nil
}

// PrimarySource fetches USD-based rates as a flat {code: rate} mapping.
type PrimarySource struct {
	url    string
	client *http.Client
}

// NewPrimarySource creates the primary rate source.
func NewPrimarySource(url string, timeout time.Duration) *PrimarySource {
	return &PrimarySource{url: url, client: newHTTPClient(timeout)}
}

// Ensure PrimarySource implements the RateSource interface
var _ portsrepo.RateSource = (*PrimarySource)(nil)

func (s *PrimarySource) Provenance() domain.RateProvenance {
	return domain.RatesFromPrimary
}

func (s *PrimarySource) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := fetchJSON(ctx, s.client, s.url, &payload); err != nil {
		return nil, err
	}
	if len(payload.Rates) == 0 {
		return nil, fmt.Errorf("primary rates response contained no rates")
	}

	table := make(domain.RateTable, len(payload.Rates))
	for code, rate := range payload.Rates {
		table[code] = decimal.NewFromFloat(rate)
	}
	table["USD"] = decimal.NewFromInt(1)
	return table, nil
}

// BackupSource fetches USD-based rates from the alternate provider, whose
// response nests each rate as {code: {"value": rate}} and needs reshaping
// into the uniform flat mapping.
type BackupSource struct {
	url    string
	client *http.Client
}

// NewBackupSource creates the secondary rate source.
func NewBackupSource(url string, timeout time.Duration) *BackupSource {
	return &BackupSource{url: url, client: newHTTPClient(timeout)}
}

// Ensure BackupSource implements the RateSource interface
var _ portsrepo.RateSource = (*BackupSource)(nil)

func (s *BackupSource) Provenance() domain.RateProvenance {
	return domain.RatesFromBackup
}

func (s *BackupSource) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	var payload struct {
		Data map[string]struct {
			Value float64 `json:"value"`
		} `json:"data"`
	}
	if err := fetchJSON(ctx, s.client, s.url, &payload); err != nil {
		return nil, err
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("backup rates response contained no rates")
	}

	table := make(domain.RateTable, len(payload.Data))
	for code, entry := range payload.Data {
		table[code] = decimal.NewFromFloat(entry.Value)
	}
	table["USD"] = decimal.NewFromInt(1)
	return table, nil
}

// FallbackSource returns a fixed rate snapshot without any network call. It
// never fails, which is what guarantees the refresh chain always terminates
// with a populated table.
type FallbackSource struct{}

// NewFallbackSource creates the terminal fallback source.
func NewFallbackSource() *FallbackSource {
	return &FallbackSource{}
}

// Ensure FallbackSource implements the RateSource interface
var _ portsrepo.RateSource = (*FallbackSource)(nil)

func (s *FallbackSource) Provenance() domain.RateProvenance {
	return domain.RatesFromFallback
}

func (s *FallbackSource) FetchLatest(ctx context.Context) (domain.RateTable, error) {
	return domain.RateTable{
		"USD": decimal.NewFromFloat(1.0000),
		"EUR": decimal.NewFromFloat(0.9180),
		"GBP": decimal.NewFromFloat(0.7850),
		"JPY": decimal.NewFromFloat(151.20),
		"CAD": decimal.NewFromFloat(1.3720),
		"AUD": decimal.NewFromFloat(1.5150),
		"CHF": decimal.NewFromFloat(0.8920),
		"CNY": decimal.NewFromFloat(7.2800),
		"RWF": decimal.NewFromFloat(1320.00),
	}, nil
}
