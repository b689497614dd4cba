package model

// Investment types for funds.
const (
	InvestmentTypeFixedIncome    = "RF" // renta fija
	InvestmentTypeVariableIncome = "RV" // renta variable
)

// Fund represents a stored investment fund position.
// The ID is assigned by the store on first save; a zero ID means unsaved.
type Fund struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Ticker         string  `json:"ticker"`
	InvestmentType string  `json:"investmentType"`
	PurchasePrice  float64 `json:"purchasePrice"`
	Quantity       float64 `json:"quantity"`
	PurchaseDate   string  `json:"purchaseDate"`
	// LastPrice is the last price the user saved with the position.
	// Used as the valuation fallback when no live quote is available.
	LastPrice float64 `json:"lastPrice"`
}

// EnrichedFund is a Fund combined with its computed market metrics.
// It is built fresh on every read and never persisted.
type EnrichedFund struct {
	Fund
	Metrics
}
