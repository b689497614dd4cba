// Package jobs contains background jobs run by the scheduler.
package jobs

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/quote"
	"github.com/dmerino/portfolio-dashboard/internal/service"
)

// TickerSource lists the distinct ticker symbols of one asset class.
// Satisfied by FundService and StockService.
type TickerSource interface {
	Tickers(ctx context.Context) ([]string, error)
}

// QuoteWarmup pre-fetches quotes for every stored ticker so interactive
// renders mostly hit a warm cache instead of blocking on the provider.
// Unavailable tickers are skipped silently; they are cached as unavailable
// anyway, which still spares the render a provider round-trip.
type QuoteWarmup struct {
	sources []TickerSource
	quotes  service.QuoteFetcher
	log     zerolog.Logger
}

// NewQuoteWarmup creates the warm-up job over the given ticker sources.
func NewQuoteWarmup(quotes service.QuoteFetcher, log zerolog.Logger, sources ...TickerSource) *QuoteWarmup {
	return &QuoteWarmup{
		sources: sources,
		quotes:  quotes,
		log:     log.With().Str("component", "quote-warmup").Logger(),
	}
}

// Name implements scheduler.Job.
func (j *QuoteWarmup) Name() string {
	return "quote-warmup"
}

// Run fetches a quote for every distinct ticker across all sources.
// Store failures abort the run; quote failures do not.
func (j *QuoteWarmup) Run() error {
	ctx := context.Background()

	seen := make(map[string]bool)
	warmed := 0

	for _, source := range j.sources {
		tickers, err := source.Tickers(ctx)
		if err != nil {
			return err
		}

		for _, ticker := range tickers {
			if seen[ticker] {
				continue
			}
			seen[ticker] = true

			if _, err := j.quotes.Fetch(ctx, ticker); err != nil && !errors.Is(err, quote.ErrUnavailable) {
				j.log.Warn().Err(err).Str("ticker", ticker).Msg("warm-up fetch failed")
				continue
			}
			warmed++
		}
	}

	j.log.Debug().Int("tickers", warmed).Msg("quote cache warmed")
	return nil
}
