package model

// Metrics holds the derived market metrics for a single position.
// All monetary and percentage values are rounded to two decimal places.
//
// When a position could not be enriched (no quote and no stored last price,
// or a malformed stored record), the zero value is used: callers must treat
// zeroed metrics as a degraded-but-valid result, not an error.
type Metrics struct {
	CurrentPrice   float64 `json:"currentPrice"`
	DailyChange    float64 `json:"dailyChange"`
	DailyChangePct float64 `json:"dailyChangePct"`
	YTDChangePct   float64 `json:"ytdChangePct"`
	TotalGain      float64 `json:"totalGain"`
	TotalGainPct   float64 `json:"totalGainPct"`
	Invested       float64 `json:"invested"`
	CurrentValue   float64 `json:"currentValue"`
}

// PortfolioSummary holds aggregate totals across all positions of one asset
// class. Recomputed from scratch on every read; never persisted.
type PortfolioSummary struct {
	TotalInvested     float64 `json:"totalInvested"`
	TotalCurrentValue float64 `json:"totalCurrentValue"`
	TotalGain         float64 `json:"totalGain"`
	TotalGainPct      float64 `json:"totalGainPct"`
}
