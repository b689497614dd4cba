package model

// SectorUnavailable is the sector label used when the provider does not
// report one for a ticker.
const SectorUnavailable = "unavailable"

// Stock represents a stored equity position.
// The ID is assigned by the store on first save; a zero ID means unsaved.
type Stock struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Ticker        string  `json:"ticker"`
	Sector        string  `json:"sector"`
	PurchasePrice float64 `json:"purchasePrice"`
	Shares        int64   `json:"shares"`
	PurchaseDate  string  `json:"purchaseDate"`
	// LastPrice is the last price the user saved with the position.
	// Used as the valuation fallback when no live quote is available.
	LastPrice float64 `json:"lastPrice"`
}

// EnrichedStock is a Stock combined with its computed market metrics.
// It is built fresh on every read and never persisted.
type EnrichedStock struct {
	Stock
	Metrics
}
