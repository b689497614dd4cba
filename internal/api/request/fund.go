package request

// CreateFundRequest is the payload for creating a fund position.
// LastPrice is optional: it seeds the valuation fallback used when the
// quote provider cannot resolve the ticker.
type CreateFundRequest struct {
	Name           string  `json:"name"`
	Ticker         string  `json:"ticker"`
	InvestmentType string  `json:"investmentType"`
	PurchasePrice  float64 `json:"purchasePrice"`
	Quantity       float64 `json:"quantity"`
	PurchaseDate   string  `json:"purchaseDate"`
	LastPrice      float64 `json:"lastPrice"`
}

// UpdateFundRequest is the payload for replacing a fund position's stored
// fields. All fields are required; the ID comes from the URL.
type UpdateFundRequest struct {
	Name           string  `json:"name"`
	Ticker         string  `json:"ticker"`
	InvestmentType string  `json:"investmentType"`
	PurchasePrice  float64 `json:"purchasePrice"`
	Quantity       float64 `json:"quantity"`
	PurchaseDate   string  `json:"purchaseDate"`
	LastPrice      float64 `json:"lastPrice"`
}
