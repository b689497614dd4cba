package request

// CreateStockRequest is the payload for creating an equity position.
// Sector is optional and defaults to "unavailable"; the provider-reported
// sector overrides it on reads when a quote is available.
type CreateStockRequest struct {
	Name          string  `json:"name"`
	Ticker        string  `json:"ticker"`
	Sector        string  `json:"sector"`
	PurchasePrice float64 `json:"purchasePrice"`
	Shares        int64   `json:"shares"`
	PurchaseDate  string  `json:"purchaseDate"`
	LastPrice     float64 `json:"lastPrice"`
}

// UpdateStockRequest is the payload for replacing an equity position's
// stored fields. All fields are required; the ID comes from the URL.
type UpdateStockRequest struct {
	Name          string  `json:"name"`
	Ticker        string  `json:"ticker"`
	Sector        string  `json:"sector"`
	PurchasePrice float64 `json:"purchasePrice"`
	Shares        int64   `json:"shares"`
	PurchaseDate  string  `json:"purchaseDate"`
	LastPrice     float64 `json:"lastPrice"`
}
