// Package quote fetches live market data for ticker symbols and memoizes
// the results for a short window. It is the only component that talks to
// the market-data provider.
package quote

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/dmerino/portfolio-dashboard/internal/money"
	"github.com/dmerino/portfolio-dashboard/internal/yahoo"
)

// ErrUnavailable is returned when the provider could not resolve a ticker
// or returned no usable history for the current year. It is the degraded
// outcome of a fetch, never a fatal condition: callers fall back to the
// position's last stored price with zero deltas.
var ErrUnavailable = errors.New("quote unavailable")

// Snapshot is a fetched, time-boxed market-data result for one ticker.
// All monetary figures are rounded to two decimals at emission.
type Snapshot struct {
	Ticker         string
	Name           string
	Sector         string
	CurrentPrice   float64
	PreviousClose  float64
	YearStartPrice float64
	FetchedAt      time.Time
}

// Fetcher retrieves quote snapshots through the provider client, caching
// results per ticker. Concurrent fetches for the same ticker within the
// cache window collapse into a single provider call.
type Fetcher struct {
	client yahoo.Client
	cache  *Cache
	group  singleflight.Group
	log    zerolog.Logger

	// now is the clock used to derive the year-to-date range, replaceable
	// in tests.
	now func() time.Time
}

// NewFetcher creates a Fetcher backed by the given provider client and cache.
func NewFetcher(client yahoo.Client, cache *Cache, log zerolog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		cache:  cache,
		log:    log.With().Str("component", "quote-fetcher").Logger(),
		now:    time.Now,
	}
}

// Fetch returns the current snapshot for a ticker, from cache when fresh.
//
// Any provider failure (network, parse, missing fields, empty history) is
// logged, cached and converted to ErrUnavailable; it never propagates as a
// fatal error. There is no retry: the next fetch after cache expiry is the
// next attempt.
func (f *Fetcher) Fetch(ctx context.Context, ticker string) (*Snapshot, error) {
	if s, ok := f.cache.Get(ticker); ok {
		if s == nil {
			return nil, ErrUnavailable
		}
		return s, nil
	}

	v, err, _ := f.group.Do(ticker, func() (any, error) {
		// Re-check after winning the flight: a concurrent caller may have
		// populated the cache between our miss and now.
		if s, ok := f.cache.Get(ticker); ok {
			if s == nil {
				return nil, ErrUnavailable
			}
			return s, nil
		}

		s := f.fetchRemote(ctx, ticker)
		f.cache.Put(ticker, s)
		if s == nil {
			return nil, ErrUnavailable
		}
		return s, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}

// Invalidate drops every cached quote so the next render re-fetches.
func (f *Fetcher) Invalidate() {
	f.cache.Invalidate()
	f.log.Debug().Msg("quote cache invalidated")
}

// fetchRemote performs the two provider calls and derives the snapshot.
// Returns nil when the ticker is unavailable.
func (f *Fetcher) fetchRemote(ctx context.Context, ticker string) *Snapshot {
	now := f.now()
	yearStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	history, err := f.client.GetDailyCloses(ctx, ticker, yearStart, now)
	if err != nil {
		f.log.Warn().Err(err).Str("ticker", ticker).Msg("history fetch failed")
		return nil
	}
	// An empty series means a new listing, a provider outage or an invalid
	// ticker. No fallback price is fabricated from metadata alone.
	if len(history) == 0 {
		f.log.Warn().Str("ticker", ticker).Msg("empty price history")
		return nil
	}

	info, err := f.client.GetQuoteInfo(ctx, ticker)
	if err != nil {
		f.log.Warn().Err(err).Str("ticker", ticker).Msg("quote info fetch failed")
		return nil
	}

	current := info.RegularMarketPrice
	if current == 0 {
		current = info.CurrentPrice
	}
	if current == 0 {
		current = history[len(history)-1].Close
	}

	// Provider-reported previous close takes priority over the series.
	previous := info.PreviousClose
	if previous == 0 {
		if len(history) > 1 {
			previous = history[len(history)-2].Close
		} else {
			previous = current
		}
	}

	name := info.LongName
	if name == "" {
		name = ticker
	}
	sector := info.Sector
	if sector == "" {
		sector = "unavailable"
	}

	return &Snapshot{
		Ticker:         ticker,
		Name:           name,
		Sector:         sector,
		CurrentPrice:   money.Round2(current),
		PreviousClose:  money.Round2(previous),
		YearStartPrice: money.Round2(history[0].Close),
		FetchedAt:      now,
	}
}
