package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/dmerino/portfolio-dashboard/internal/yahoo"
)

// MockQuoteClient is a mock implementation of yahoo.Client for testing.
// It returns predefined per-symbol test data instead of making API calls.
//
// A symbol with no configured history returns an empty series, which the
// fetcher treats as unavailable — convenient for degradation tests.
type MockQuoteClient struct {
	mu sync.Mutex

	// Infos holds the quote info to return per symbol.
	Infos map[string]yahoo.QuoteInfo
	// Histories holds the closing-price series to return per symbol.
	Histories map[string][]yahoo.ClosePrice

	// InfoErr and HistoryErr, when set, are returned by every call.
	InfoErr    error
	HistoryErr error

	// InfoCalls and HistoryCalls track provider call volume.
	InfoCalls    int
	HistoryCalls int
}

// NewMockQuoteClient creates an empty mock. Configure it with WithQuote.
func NewMockQuoteClient() *MockQuoteClient {
	return &MockQuoteClient{
		Infos:     make(map[string]yahoo.QuoteInfo),
		Histories: make(map[string][]yahoo.ClosePrice),
	}
}

// WithQuote configures a symbol with quote info and a closing-price series.
func (m *MockQuoteClient) WithQuote(symbol string, info yahoo.QuoteInfo, history []yahoo.ClosePrice) *MockQuoteClient {
	m.Infos[symbol] = info
	m.Histories[symbol] = history
	return m
}

// WithHistoryError configures the mock to fail every history call.
func (m *MockQuoteClient) WithHistoryError(err error) *MockQuoteClient {
	m.HistoryErr = err
	return m
}

// WithInfoError configures the mock to fail every quote info call.
func (m *MockQuoteClient) WithInfoError(err error) *MockQuoteClient {
	m.InfoErr = err
	return m
}

// GetQuoteInfo returns the configured info for a symbol.
func (m *MockQuoteClient) GetQuoteInfo(_ context.Context, symbol string) (yahoo.QuoteInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.InfoCalls++
	if m.InfoErr != nil {
		return yahoo.QuoteInfo{}, m.InfoErr
	}
	return m.Infos[symbol], nil
}

// GetDailyCloses returns the configured series for a symbol.
func (m *MockQuoteClient) GetDailyCloses(_ context.Context, symbol string, _, _ time.Time) ([]yahoo.ClosePrice, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.HistoryCalls++
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	return m.Histories[symbol], nil
}

// Calls reports the total number of provider calls made.
func (m *MockQuoteClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.InfoCalls + m.HistoryCalls
}

// MakeHistory builds a daily closing-price series from the given closes,
// one trading day apart, starting January 2nd of the current year.
func MakeHistory(closes ...float64) []yahoo.ClosePrice {
	start := time.Date(time.Now().UTC().Year(), time.January, 2, 0, 0, 0, 0, time.UTC)

	series := make([]yahoo.ClosePrice, len(closes))
	for i, c := range closes {
		series[i] = yahoo.ClosePrice{
			Date:  start.AddDate(0, 0, i),
			Close: c,
		}
	}
	return series
}
