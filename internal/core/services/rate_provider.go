package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fx_desk/internal/apperrors"
	"github.com/SscSPs/fx_desk/internal/core/domain"
	"github.com/SscSPs/fx_desk/internal/core/ports"
	"github.com/SscSPs/fx_desk/internal/utils/conversion"
)

// RateProvider turns remote quotes into display-rate snapshots.
//
// The source is assumed to quote "1 LOCAL = X FOREIGN"; the display rate is
// the reciprocal 1/X. A source that changes its quoting base would silently
// invert every rate.
type RateProvider struct {
	BaseService
	source        ports.RateSource
	localCurrency string
	now           func() time.Time
}

// RateProviderOption configures a RateProvider.
type RateProviderOption func(*RateProvider)

// WithLocalCurrency sets the base currency requested from the source.
func WithLocalCurrency(code string) RateProviderOption {
	return func(p *RateProvider) {
		if code != "" {
			p.localCurrency = strings.ToUpper(code)
		}
	}
}

// WithClock overrides the time source used to stamp snapshots.
func WithClock(now func() time.Time) RateProviderOption {
	return func(p *RateProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewRateProvider creates a new RateProvider.
func NewRateProvider(source ports.RateSource, opts ...RateProviderOption) *RateProvider {
	p := &RateProvider{
		source:        source,
		localCurrency: domain.LocalCurrency,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// LocalCurrency returns the currency the snapshot rates are expressed in.
func (p *RateProvider) LocalCurrency() string {
	return p.localCurrency
}

// FetchRates fetches a live snapshot, substituting the fallback table on any
// failure. A live response that contains none of the supported currencies is
// a failure too, so the returned snapshot never has an empty Rates slice.
func (p *RateProvider) FetchRates(ctx context.Context) domain.Snapshot {
	snap, err := p.fetchLive(ctx)
	if err != nil {
		p.LogWarn(ctx, err, "Live rate fetch failed, using fallback rates",
			slog.String("base", p.localCurrency))
		return domain.FallbackSnapshot(p.now())
	}

	p.LogDebug(ctx, "Live rates fetched",
		slog.String("base", p.localCurrency),
		slog.Int("count", len(snap.Rates)))
	return snap
}

func (p *RateProvider) fetchLive(ctx context.Context) (domain.Snapshot, error) {
	if p.source == nil {
		return domain.Snapshot{}, fmt.Errorf("%w: no rate source configured", apperrors.ErrRateSourceUnavailable)
	}

	quotes, err := p.source.FetchQuotes(ctx, p.localCurrency)
	if err != nil {
		return domain.Snapshot{}, err
	}
	if quotes == nil {
		return domain.Snapshot{}, fmt.Errorf("%w: empty response", apperrors.ErrRateSourceUnavailable)
	}

	rates := BuildDisplayRates(quotes.Rates)
	if len(rates) == 0 {
		return domain.Snapshot{}, fmt.Errorf("%w: response has none of the supported currencies", apperrors.ErrRateSourceUnavailable)
	}

	return domain.Snapshot{
		Rates:     rates,
		Source:    domain.SourceLive,
		FetchedAt: p.now(),
	}, nil
}

// BuildDisplayRates maps raw quotes onto the currency catalog. Codes missing
// from quotes, or whose quote is unusable, are left out.
func BuildDisplayRates(quotes map[string]float64) []domain.CurrencyRate {
	rates := make([]domain.CurrencyRate, 0, len(quotes))
	for _, c := range domain.SupportedCurrencies() {
		quote, ok := quotes[c.CurrencyCode]
		if !ok {
			continue
		}
		rate, ok := conversion.Reciprocal(quote)
		if !ok || rate <= 0 {
			continue
		}
		rates = append(rates, domain.CurrencyRate{
			Code: c.CurrencyCode,
			Name: c.Name,
			Rate: rate,
			Flag: c.Flag,
		})
	}
	return rates
}
