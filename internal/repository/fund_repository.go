// Package repository provides data access for the fund and stock tables.
// Each repository exposes the store contract the services depend on:
// list-all, upsert-by-id and delete-by-id.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
)

// FundRepository provides data access methods for the fund table.
type FundRepository struct {
	db *sql.DB
}

// NewFundRepository creates a new FundRepository with the provided database
// connection.
func NewFundRepository(db *sql.DB) *FundRepository {
	return &FundRepository{db: db}
}

// List retrieves all fund positions ordered by ID.
// Returns an empty slice if no funds are stored.
func (r *FundRepository) List(ctx context.Context) ([]model.Fund, error) {
	query := `
		SELECT id, name, ticker, investment_type, purchase_price, quantity, purchase_date, last_price
		FROM fund
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund table: %w", err)
	}
	defer rows.Close()

	funds := []model.Fund{}
	for rows.Next() {
		var f model.Fund
		err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Ticker,
			&f.InvestmentType,
			&f.PurchasePrice,
			&f.Quantity,
			&f.PurchaseDate,
			&f.LastPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund row: %w", err)
		}
		funds = append(funds, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund table: %w", err)
	}

	return funds, nil
}

// Upsert inserts a fund when its ID is zero, otherwise updates the existing
// row. On insert the store-assigned ID is set on the returned fund.
// Returns apperrors.ErrFundNotFound when updating a non-existent ID.
func (r *FundRepository) Upsert(ctx context.Context, f model.Fund) (model.Fund, error) {
	if f.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO fund (name, ticker, investment_type, purchase_price, quantity, purchase_date, last_price)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.Name, f.Ticker, f.InvestmentType, f.PurchasePrice, f.Quantity, f.PurchaseDate, f.LastPrice,
		)
		if err != nil {
			return model.Fund{}, fmt.Errorf("failed to insert fund: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return model.Fund{}, fmt.Errorf("failed to read inserted fund ID: %w", err)
		}
		f.ID = id
		return f, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE fund
		SET name = ?, ticker = ?, investment_type = ?, purchase_price = ?, quantity = ?, purchase_date = ?, last_price = ?
		WHERE id = ?`,
		f.Name, f.Ticker, f.InvestmentType, f.PurchasePrice, f.Quantity, f.PurchaseDate, f.LastPrice, f.ID,
	)
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to update fund: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Fund{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Fund{}, apperrors.ErrFundNotFound
	}

	return f, nil
}

// Delete removes a fund position by ID.
// Returns apperrors.ErrFundNotFound if the ID does not exist.
func (r *FundRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fund WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fund: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrFundNotFound
	}

	return nil
}

// Tickers retrieves the distinct ticker symbols across all stored funds.
func (r *FundRepository) Tickers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT ticker FROM fund ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fund tickers: %w", err)
	}
	defer rows.Close()

	tickers := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}
		tickers = append(tickers, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fund tickers: %w", err)
	}

	return tickers, nil
}
