package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/quote"
	"github.com/dmerino/portfolio-dashboard/internal/repository"
	"github.com/dmerino/portfolio-dashboard/internal/service"
	"github.com/dmerino/portfolio-dashboard/internal/testutil"
	"github.com/dmerino/portfolio-dashboard/internal/yahoo"
)

func newStockService(t *testing.T) (*service.StockService, *sql.DB, *testutil.MockQuoteClient) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	client := testutil.NewMockQuoteClient()
	fetcher := quote.NewFetcher(client, quote.NewCache(5*time.Minute), zerolog.Nop())
	svc := service.NewStockService(repository.NewStockRepository(db), fetcher, zerolog.Nop())
	return svc, db, client
}

// TestGetStocksWithMetrics covers the equity read path, including the
// sector override from the provider and whole-share valuation.
func TestGetStocksWithMetrics(t *testing.T) {
	t.Run("enriches with metrics and provider sector", func(t *testing.T) {
		svc, db, client := newStockService(t)

		testutil.NewStock().WithTicker("ACME").WithPurchasePrice(50).WithShares(20).Build(t, db)
		client.WithQuote("ACME",
			yahoo.QuoteInfo{
				LongName:           "Acme Corp",
				Sector:             "Industrials",
				RegularMarketPrice: 55,
				PreviousClose:      54,
			},
			testutil.MakeHistory(45, 54, 55))

		stocks, summary, err := svc.GetStocksWithMetrics(context.Background())
		if err != nil {
			t.Fatalf("GetStocksWithMetrics() returned unexpected error: %v", err)
		}

		if len(stocks) != 1 {
			t.Fatalf("Expected 1 stock, got %d", len(stocks))
		}

		st := stocks[0]
		if st.Sector != "Industrials" {
			t.Errorf("Expected provider sector to replace stored one, got %q", st.Sector)
		}
		if st.Name != "Acme Corp" {
			t.Errorf("Expected provider name, got %q", st.Name)
		}

		want := model.Metrics{
			CurrentPrice:   55,
			DailyChange:    1,
			DailyChangePct: 1.85,
			YTDChangePct:   22.22,
			TotalGain:      100,
			TotalGainPct:   10,
			Invested:       1000,
			CurrentValue:   1100,
		}
		if st.Metrics != want {
			t.Errorf("metrics = %+v, want %+v", st.Metrics, want)
		}
		if summary.TotalInvested != 1000 || summary.TotalCurrentValue != 1100 {
			t.Errorf("summary = %+v", summary)
		}
	})

	t.Run("unavailable quote keeps stored sector", func(t *testing.T) {
		svc, db, _ := newStockService(t)

		testutil.NewStock().WithTicker("ZZZZ").WithSector("Energy").WithLastPrice(48).Build(t, db)

		stocks, _, err := svc.GetStocksWithMetrics(context.Background())
		if err != nil {
			t.Fatalf("GetStocksWithMetrics() returned unexpected error: %v", err)
		}

		if stocks[0].Sector != "Energy" {
			t.Errorf("Expected stored sector for degraded position, got %q", stocks[0].Sector)
		}
		if stocks[0].Metrics.CurrentPrice != 48 {
			t.Errorf("Expected stored price 48, got %v", stocks[0].Metrics.CurrentPrice)
		}
	})

	t.Run("store failure returns error with empty result", func(t *testing.T) {
		svc, db, _ := newStockService(t)
		db.Close()

		stocks, _, err := svc.GetStocksWithMetrics(context.Background())
		if err == nil {
			t.Fatal("Expected error from closed store")
		}
		if stocks == nil || len(stocks) != 0 {
			t.Errorf("Expected empty non-nil list, got %v", stocks)
		}
	})
}

// TestStockCRUD covers the equity write path.
func TestStockCRUD(t *testing.T) {
	t.Run("create defaults an empty sector", func(t *testing.T) {
		svc, _, _ := newStockService(t)

		saved, err := svc.CreateStock(context.Background(), request.CreateStockRequest{
			Name:          "Acme Corp",
			Ticker:        "ACME",
			PurchasePrice: 50,
			Shares:        20,
			PurchaseDate:  "2025-03-01",
		})
		if err != nil {
			t.Fatalf("CreateStock() returned unexpected error: %v", err)
		}

		if saved.ID == 0 {
			t.Error("Expected store-assigned ID")
		}
		if saved.Sector != model.SectorUnavailable {
			t.Errorf("Expected default sector, got %q", saved.Sector)
		}
	})

	t.Run("update of unknown ID returns not found", func(t *testing.T) {
		svc, _, _ := newStockService(t)

		_, err := svc.UpdateStock(context.Background(), 9999, request.UpdateStockRequest{
			Name:         "Ghost",
			Ticker:       "ACME",
			PurchaseDate: "2025-03-01",
		})
		if !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected ErrStockNotFound, got %v", err)
		}
	})

	t.Run("delete removes the position", func(t *testing.T) {
		svc, db, _ := newStockService(t)
		stock := testutil.NewStock().Build(t, db)

		if err := svc.DeleteStock(context.Background(), stock.ID); err != nil {
			t.Fatalf("DeleteStock() returned unexpected error: %v", err)
		}

		if err := svc.DeleteStock(context.Background(), stock.ID); !errors.Is(err, apperrors.ErrStockNotFound) {
			t.Errorf("Expected ErrStockNotFound on second delete, got %v", err)
		}
	})
}
