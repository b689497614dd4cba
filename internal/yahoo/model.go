package yahoo

import "time"

// ChartResponse represents the raw JSON response from the Yahoo Finance
// chart API. The structure maps directly to the v8 chart endpoint format:
//   - Chart.Result: array of result objects (typically one element)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators.Quote[].Close: daily closing prices
//   - Chart.Error: optional error message from the Yahoo API
type ChartResponse struct {
	Chart Chart `json:"chart"`
}

// Chart is the envelope of a chart API response.
type Chart struct {
	Result []ChartResult `json:"result"`
	Error  *string       `json:"error"`
}

// ChartResult is one result entry of a chart API response.
type ChartResult struct {
	Meta       ChartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators Indicators `json:"indicators"`
}

// ChartMeta carries symbol metadata reported alongside the price series.
type ChartMeta struct {
	Currency string `json:"currency"`
	Symbol   string `json:"symbol"`
	LongName string `json:"longName"`
}

// Indicators wraps the per-day price arrays of a chart result.
type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the closing price array. Yahoo reports null for days without
// a close (market holidays inside the range), hence the pointer elements.
type Quote struct {
	Close []*float64 `json:"close"`
}

// quoteSummaryResponse represents the raw JSON response from the Yahoo
// Finance quoteSummary API (v10), requested with the price, financialData
// and assetProfile modules.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *string              `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price struct {
		LongName                   string       `json:"longName"`
		RegularMarketPrice         wrappedValue `json:"regularMarketPrice"`
		RegularMarketPreviousClose wrappedValue `json:"regularMarketPreviousClose"`
	} `json:"price"`
	FinancialData struct {
		CurrentPrice wrappedValue `json:"currentPrice"`
	} `json:"financialData"`
	AssetProfile struct {
		Sector string `json:"sector"`
	} `json:"assetProfile"`
}

// wrappedValue models Yahoo's {"raw": 123.45, "fmt": "123.45"} number format.
type wrappedValue struct {
	Raw float64 `json:"raw"`
}

// QuoteInfo is the parsed metadata and spot pricing for one symbol.
// Numeric fields are 0 when the provider did not report them; callers are
// expected to fall back to the historical series in that case.
type QuoteInfo struct {
	Symbol             string
	LongName           string
	Sector             string
	RegularMarketPrice float64
	CurrentPrice       float64
	PreviousClose      float64
}

// ClosePrice is a single day's closing price for a symbol.
type ClosePrice struct {
	Date  time.Time
	Close float64
}
