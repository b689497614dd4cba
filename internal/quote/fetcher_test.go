package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmerino/portfolio-dashboard/internal/testutil"
	"github.com/dmerino/portfolio-dashboard/internal/yahoo"
)

func newTestFetcher(client yahoo.Client) (*Fetcher, *Cache) {
	cache := NewCache(5 * time.Minute)
	return NewFetcher(client, cache, zerolog.Nop()), cache
}

func TestFetchBuildsSnapshot(t *testing.T) {
	client := testutil.NewMockQuoteClient().WithQuote("AAA",
		yahoo.QuoteInfo{
			LongName:           "Alpha Global Index",
			Sector:             "Technology",
			RegularMarketPrice: 110.456,
			PreviousClose:      108.123,
		},
		testutil.MakeHistory(90.456, 108, 110))
	f, _ := newTestFetcher(client)

	snap, err := f.Fetch(context.Background(), "AAA")
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "AAA", snap.Ticker)
	assert.Equal(t, "Alpha Global Index", snap.Name)
	assert.Equal(t, "Technology", snap.Sector)
	assert.Equal(t, 110.46, snap.CurrentPrice, "prices are rounded to two decimals")
	assert.Equal(t, 108.12, snap.PreviousClose)
	assert.Equal(t, 90.46, snap.YearStartPrice)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestFetchFallbackChains(t *testing.T) {
	t.Run("current price falls back to currentPrice then last close", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{CurrentPrice: 101},
			testutil.MakeHistory(90, 100))
		f, _ := newTestFetcher(client)

		snap, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, 101.0, snap.CurrentPrice)

		client = testutil.NewMockQuoteClient().WithQuote("BBB",
			yahoo.QuoteInfo{},
			testutil.MakeHistory(90, 100))
		f, _ = newTestFetcher(client)

		snap, err = f.Fetch(context.Background(), "BBB")
		require.NoError(t, err)
		assert.Equal(t, 100.0, snap.CurrentPrice, "last close is the final fallback")
	})

	t.Run("previous close falls back to second-to-last close", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110},
			testutil.MakeHistory(90, 108, 110))
		f, _ := newTestFetcher(client)

		snap, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, 108.0, snap.PreviousClose)
	})

	t.Run("provider previous close wins over the series", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110, PreviousClose: 109},
			testutil.MakeHistory(90, 108, 110))
		f, _ := newTestFetcher(client)

		snap, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, 109.0, snap.PreviousClose)
	})

	t.Run("single data point uses current as previous", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{},
			testutil.MakeHistory(104.5))
		f, _ := newTestFetcher(client)

		snap, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, snap.CurrentPrice, snap.PreviousClose)
		assert.Equal(t, 104.5, snap.YearStartPrice)
	})

	t.Run("name defaults to ticker and sector to unavailable", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110},
			testutil.MakeHistory(90, 110))
		f, _ := newTestFetcher(client)

		snap, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, "AAA", snap.Name)
		assert.Equal(t, "unavailable", snap.Sector)
	})
}

func TestFetchUnavailable(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		f, _ := newTestFetcher(testutil.NewMockQuoteClient())

		snap, err := f.Fetch(context.Background(), "ZZZZ")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Nil(t, snap)
	})

	t.Run("history fetch failure", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithHistoryError(errors.New("timeout"))
		f, _ := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "AAA")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("quote info failure", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().
			WithQuote("AAA", yahoo.QuoteInfo{}, testutil.MakeHistory(90, 110)).
			WithInfoError(errors.New("rate limited"))
		f, _ := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "AAA")
		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("unavailable outcome is cached", func(t *testing.T) {
		client := testutil.NewMockQuoteClient()
		f, _ := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "ZZZZ")
		require.ErrorIs(t, err, ErrUnavailable)
		callsAfterFirst := client.Calls()

		_, err = f.Fetch(context.Background(), "ZZZZ")
		assert.ErrorIs(t, err, ErrUnavailable)
		assert.Equal(t, callsAfterFirst, client.Calls(), "a failed lookup should not re-hit the provider")
	})
}

func TestFetchCaching(t *testing.T) {
	t.Run("second fetch inside the window hits the cache", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110},
			testutil.MakeHistory(90, 110))
		f, _ := newTestFetcher(client)

		first, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)

		second, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)

		assert.Same(t, first, second, "cached snapshot is returned as-is")
		assert.Equal(t, 1, client.HistoryCalls)
		assert.Equal(t, 1, client.InfoCalls)
	})

	t.Run("fetch after expiry re-hits the provider", func(t *testing.T) {
		base := time.Date(2025, time.June, 2, 10, 0, 0, 0, time.UTC)
		clock := base

		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110},
			testutil.MakeHistory(90, 110))
		f, cache := newTestFetcher(client)
		cache.now = func() time.Time { return clock }
		f.now = func() time.Time { return clock }

		_, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)

		clock = base.Add(6 * time.Minute)
		_, err = f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)

		assert.Equal(t, 2, client.HistoryCalls)
	})

	t.Run("invalidate forces a re-fetch", func(t *testing.T) {
		client := testutil.NewMockQuoteClient().WithQuote("AAA",
			yahoo.QuoteInfo{RegularMarketPrice: 110},
			testutil.MakeHistory(90, 110))
		f, _ := newTestFetcher(client)

		_, err := f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)

		f.Invalidate()

		_, err = f.Fetch(context.Background(), "AAA")
		require.NoError(t, err)
		assert.Equal(t, 2, client.HistoryCalls)
	})
}
