package repository_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/repository"
	"github.com/dmerino/portfolio-dashboard/internal/testutil"
)

func TestFundRepositoryList(t *testing.T) {
	t.Run("empty table returns empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		funds, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if funds == nil {
			t.Error("Expected empty slice, got nil")
		}
		if len(funds) != 0 {
			t.Errorf("Expected 0 funds, got %d", len(funds))
		}
	})

	t.Run("returns funds in insertion order", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		first := testutil.NewFund().WithTicker("BBB").Build(t, db)
		second := testutil.NewFund().WithTicker("AAA").Build(t, db)

		funds, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if len(funds) != 2 {
			t.Fatalf("Expected 2 funds, got %d", len(funds))
		}
		if funds[0].ID != first.ID || funds[1].ID != second.ID {
			t.Errorf("Expected ID order %d, %d; got %d, %d",
				first.ID, second.ID, funds[0].ID, funds[1].ID)
		}
	})
}

func TestFundRepositoryUpsert(t *testing.T) {
	t.Run("insert assigns an ID and persists all fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		fund := model.Fund{
			Name:           "Global Index",
			Ticker:         "AAA",
			InvestmentType: model.InvestmentTypeVariableIncome,
			PurchasePrice:  100,
			Quantity:       10,
			PurchaseDate:   "2025-03-01",
			LastPrice:      105,
		}

		saved, err := repo.Upsert(context.Background(), fund)
		if err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}
		if saved.ID == 0 {
			t.Fatal("Expected store-assigned ID")
		}

		funds, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		fund.ID = saved.ID
		if !reflect.DeepEqual(funds[0], fund) {
			t.Errorf("Stored fund = %+v, want %+v", funds[0], fund)
		}
	})

	t.Run("update replaces the stored row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)
		fund := testutil.NewFund().Build(t, db)

		fund.Name = "Renamed"
		fund.LastPrice = 120

		if _, err := repo.Upsert(context.Background(), fund); err != nil {
			t.Fatalf("Upsert() returned unexpected error: %v", err)
		}

		funds, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}

		if funds[0].Name != "Renamed" || funds[0].LastPrice != 120 {
			t.Errorf("Update not persisted: %+v", funds[0])
		}
	})

	t.Run("update of unknown ID returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		_, err := repo.Upsert(context.Background(), model.Fund{ID: 9999, Name: "Ghost"})
		if !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}

func TestFundRepositoryDelete(t *testing.T) {
	t.Run("removes the row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)
		fund := testutil.NewFund().Build(t, db)

		if err := repo.Delete(context.Background(), fund.ID); err != nil {
			t.Fatalf("Delete() returned unexpected error: %v", err)
		}

		funds, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("List() returned unexpected error: %v", err)
		}
		if len(funds) != 0 {
			t.Errorf("Expected empty table after delete, got %d funds", len(funds))
		}
	})

	t.Run("unknown ID returns not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		repo := repository.NewFundRepository(db)

		if err := repo.Delete(context.Background(), 9999); !errors.Is(err, apperrors.ErrFundNotFound) {
			t.Errorf("Expected ErrFundNotFound, got %v", err)
		}
	})
}

func TestFundRepositoryTickers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewFundRepository(db)

	testutil.NewFund().WithTicker("BBB").Build(t, db)
	testutil.NewFund().WithTicker("AAA").Build(t, db)
	testutil.NewFund().WithTicker("BBB").Build(t, db)

	tickers, err := repo.Tickers(context.Background())
	if err != nil {
		t.Fatalf("Tickers() returned unexpected error: %v", err)
	}

	want := []string{"AAA", "BBB"}
	if !reflect.DeepEqual(tickers, want) {
		t.Errorf("Tickers() = %v, want %v", tickers, want)
	}
}
