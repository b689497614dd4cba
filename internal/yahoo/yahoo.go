package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client is the market-data provider interface consumed by the quote
// fetcher. It is satisfied by FinanceClient and by test mocks.
type Client interface {
	// GetQuoteInfo fetches name, sector and spot prices for a symbol.
	GetQuoteInfo(ctx context.Context, symbol string) (QuoteInfo, error)

	// GetDailyCloses fetches the daily closing-price series for a symbol
	// within the given date range, ordered oldest first.
	GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]ClosePrice, error)
}

// FinanceClient provides methods for fetching financial data from the Yahoo
// Finance API. It wraps an HTTP client and implements the Client interface.
type FinanceClient struct {
	httpClient *http.Client
	baseURL    string
}

// NewFinanceClient creates a new Yahoo Finance client with default HTTP
// settings pointed at the public query endpoint.
func NewFinanceClient() *FinanceClient {
	return &FinanceClient{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
	}
}

// GetQuoteInfo fetches symbol metadata and spot prices from the quoteSummary
// endpoint. Missing modules or fields are returned as zero values rather
// than errors, since Yahoo omits them for many instruments (funds have no
// assetProfile, for example).
func (c *FinanceClient) GetQuoteInfo(ctx context.Context, symbol string) (QuoteInfo, error) {
	url := fmt.Sprintf(
		"%s/v10/finance/quoteSummary/%s?modules=price,financialData,assetProfile",
		c.baseURL,
		symbol,
	)

	var response quoteSummaryResponse
	if err := c.queryJSON(ctx, url, &response); err != nil {
		return QuoteInfo{}, err
	}

	if response.QuoteSummary.Error != nil {
		return QuoteInfo{}, fmt.Errorf("yahoo error for %s: %s", symbol, *response.QuoteSummary.Error)
	}
	if len(response.QuoteSummary.Result) == 0 {
		return QuoteInfo{}, fmt.Errorf("no quote summary returned for symbol %s", symbol)
	}

	result := response.QuoteSummary.Result[0]

	return QuoteInfo{
		Symbol:             symbol,
		LongName:           result.Price.LongName,
		Sector:             result.AssetProfile.Sector,
		RegularMarketPrice: result.Price.RegularMarketPrice.Raw,
		CurrentPrice:       result.FinancialData.CurrentPrice.Raw,
		PreviousClose:      result.Price.RegularMarketPreviousClose.Raw,
	}, nil
}

// GetDailyCloses fetches daily closing prices for a symbol within a date
// range using the chart endpoint with Unix-timestamp periods.
//
// Days without a closing price (holidays inside the range) are skipped, so
// the returned series contains only trading days, ordered oldest first.
func (c *FinanceClient) GetDailyCloses(ctx context.Context, symbol string, start, end time.Time) ([]ClosePrice, error) {
	url := fmt.Sprintf(
		"%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL,
		symbol,
		start.Unix(),
		end.Unix(),
	)

	var response ChartResponse
	if err := c.queryJSON(ctx, url, &response); err != nil {
		return nil, err
	}

	if response.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo error for %s: %s", symbol, *response.Chart.Error)
	}
	if len(response.Chart.Result) == 0 {
		return nil, fmt.Errorf("no results returned for symbol %s", symbol)
	}

	return parseCloses(response.Chart.Result[0])
}

// parseCloses converts a raw chart result into an ordered closing-price
// series, validating that timestamps and close prices line up.
func parseCloses(result ChartResult) ([]ClosePrice, error) {
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no close prices returned")
	}

	closes := result.Indicators.Quote[0].Close
	if len(closes) != len(result.Timestamp) {
		return nil, fmt.Errorf("mismatched data lengths")
	}

	series := make([]ClosePrice, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if closes[i] == nil {
			continue
		}
		series = append(series, ClosePrice{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}

	return series, nil
}

// queryJSON executes an HTTP GET against the Yahoo Finance API and decodes
// the JSON response into out. It sets the headers Yahoo requires:
//   - User-Agent: mimics a browser to avoid API blocking
//   - Accept: requests JSON response format
func (c *FinanceClient) queryJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode yahoo response: %w", err)
	}

	return nil
}
