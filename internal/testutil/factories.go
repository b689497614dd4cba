package testutil

import (
	"database/sql"
	"testing"

	"github.com/dmerino/portfolio-dashboard/internal/model"
)

// FundBuilder provides a fluent interface for creating test funds.
//
// Example usage:
//
//	// Simple creation with defaults
//	fund := testutil.NewFund().Build(t, db)
//
//	// Customized fund
//	fund := testutil.NewFund().
//	    WithTicker("ABC").
//	    WithPurchasePrice(100).
//	    WithQuantity(10).
//	    Build(t, db)
type FundBuilder struct {
	Name           string
	Ticker         string
	InvestmentType string
	PurchasePrice  float64
	Quantity       float64
	PurchaseDate   string
	LastPrice      float64
}

// NewFund creates a FundBuilder with sensible defaults.
func NewFund() *FundBuilder {
	return &FundBuilder{
		Name:           "Test Fund",
		Ticker:         "TESTF",
		InvestmentType: model.InvestmentTypeFixedIncome,
		PurchasePrice:  100,
		Quantity:       10,
		PurchaseDate:   "2025-01-15",
		LastPrice:      0,
	}
}

// WithName sets a custom name.
func (b *FundBuilder) WithName(name string) *FundBuilder {
	b.Name = name
	return b
}

// WithTicker sets a custom ticker.
func (b *FundBuilder) WithTicker(ticker string) *FundBuilder {
	b.Ticker = ticker
	return b
}

// WithInvestmentType sets the investment type (RF or RV).
func (b *FundBuilder) WithInvestmentType(investmentType string) *FundBuilder {
	b.InvestmentType = investmentType
	return b
}

// WithPurchasePrice sets the per-unit purchase price.
func (b *FundBuilder) WithPurchasePrice(price float64) *FundBuilder {
	b.PurchasePrice = price
	return b
}

// WithQuantity sets the units held.
func (b *FundBuilder) WithQuantity(quantity float64) *FundBuilder {
	b.Quantity = quantity
	return b
}

// WithLastPrice sets the stored fallback price.
func (b *FundBuilder) WithLastPrice(price float64) *FundBuilder {
	b.LastPrice = price
	return b
}

// Build inserts the fund and returns it with its assigned ID.
func (b *FundBuilder) Build(t *testing.T, db *sql.DB) model.Fund {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO fund (name, ticker, investment_type, purchase_price, quantity, purchase_date, last_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Name, b.Ticker, b.InvestmentType, b.PurchasePrice, b.Quantity, b.PurchaseDate, b.LastPrice,
	)
	if err != nil {
		t.Fatalf("Failed to insert test fund: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test fund ID: %v", err)
	}

	return model.Fund{
		ID:             id,
		Name:           b.Name,
		Ticker:         b.Ticker,
		InvestmentType: b.InvestmentType,
		PurchasePrice:  b.PurchasePrice,
		Quantity:       b.Quantity,
		PurchaseDate:   b.PurchaseDate,
		LastPrice:      b.LastPrice,
	}
}

// StockBuilder provides a fluent interface for creating test stocks.
type StockBuilder struct {
	Name          string
	Ticker        string
	Sector        string
	PurchasePrice float64
	Shares        int64
	PurchaseDate  string
	LastPrice     float64
}

// NewStock creates a StockBuilder with sensible defaults.
func NewStock() *StockBuilder {
	return &StockBuilder{
		Name:          "Test Stock",
		Ticker:        "TESTS",
		Sector:        model.SectorUnavailable,
		PurchasePrice: 50,
		Shares:        20,
		PurchaseDate:  "2025-01-15",
		LastPrice:     0,
	}
}

// WithName sets a custom name.
func (b *StockBuilder) WithName(name string) *StockBuilder {
	b.Name = name
	return b
}

// WithTicker sets a custom ticker.
func (b *StockBuilder) WithTicker(ticker string) *StockBuilder {
	b.Ticker = ticker
	return b
}

// WithSector sets the stored sector.
func (b *StockBuilder) WithSector(sector string) *StockBuilder {
	b.Sector = sector
	return b
}

// WithPurchasePrice sets the per-share purchase price.
func (b *StockBuilder) WithPurchasePrice(price float64) *StockBuilder {
	b.PurchasePrice = price
	return b
}

// WithShares sets the shares held.
func (b *StockBuilder) WithShares(shares int64) *StockBuilder {
	b.Shares = shares
	return b
}

// WithLastPrice sets the stored fallback price.
func (b *StockBuilder) WithLastPrice(price float64) *StockBuilder {
	b.LastPrice = price
	return b
}

// Build inserts the stock and returns it with its assigned ID.
func (b *StockBuilder) Build(t *testing.T, db *sql.DB) model.Stock {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO stock (name, ticker, sector, purchase_price, shares, purchase_date, last_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		b.Name, b.Ticker, b.Sector, b.PurchasePrice, b.Shares, b.PurchaseDate, b.LastPrice,
	)
	if err != nil {
		t.Fatalf("Failed to insert test stock: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test stock ID: %v", err)
	}

	return model.Stock{
		ID:            id,
		Name:          b.Name,
		Ticker:        b.Ticker,
		Sector:        b.Sector,
		PurchasePrice: b.PurchasePrice,
		Shares:        b.Shares,
		PurchaseDate:  b.PurchaseDate,
		LastPrice:     b.LastPrice,
	}
}
