package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
)

// StockRepository provides data access methods for the stock table.
type StockRepository struct {
	db *sql.DB
}

// NewStockRepository creates a new StockRepository with the provided
// database connection.
func NewStockRepository(db *sql.DB) *StockRepository {
	return &StockRepository{db: db}
}

// List retrieves all equity positions ordered by ID.
// Returns an empty slice if no stocks are stored.
func (r *StockRepository) List(ctx context.Context) ([]model.Stock, error) {
	query := `
		SELECT id, name, ticker, sector, purchase_price, shares, purchase_date, last_price
		FROM stock
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock table: %w", err)
	}
	defer rows.Close()

	stocks := []model.Stock{}
	for rows.Next() {
		var s model.Stock
		err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Ticker,
			&s.Sector,
			&s.PurchasePrice,
			&s.Shares,
			&s.PurchaseDate,
			&s.LastPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock row: %w", err)
		}
		stocks = append(stocks, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock table: %w", err)
	}

	return stocks, nil
}

// Upsert inserts a stock when its ID is zero, otherwise updates the
// existing row. On insert the store-assigned ID is set on the returned
// stock. Returns apperrors.ErrStockNotFound when updating a non-existent ID.
func (r *StockRepository) Upsert(ctx context.Context, s model.Stock) (model.Stock, error) {
	if s.ID == 0 {
		result, err := r.db.ExecContext(ctx, `
			INSERT INTO stock (name, ticker, sector, purchase_price, shares, purchase_date, last_price)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			s.Name, s.Ticker, s.Sector, s.PurchasePrice, s.Shares, s.PurchaseDate, s.LastPrice,
		)
		if err != nil {
			return model.Stock{}, fmt.Errorf("failed to insert stock: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return model.Stock{}, fmt.Errorf("failed to read inserted stock ID: %w", err)
		}
		s.ID = id
		return s, nil
	}

	result, err := r.db.ExecContext(ctx, `
		UPDATE stock
		SET name = ?, ticker = ?, sector = ?, purchase_price = ?, shares = ?, purchase_date = ?, last_price = ?
		WHERE id = ?`,
		s.Name, s.Ticker, s.Sector, s.PurchasePrice, s.Shares, s.PurchaseDate, s.LastPrice, s.ID,
	)
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to update stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Stock{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Stock{}, apperrors.ErrStockNotFound
	}

	return s, nil
}

// Delete removes an equity position by ID.
// Returns apperrors.ErrStockNotFound if the ID does not exist.
func (r *StockRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stock WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStockNotFound
	}

	return nil
}

// Tickers retrieves the distinct ticker symbols across all stored stocks.
func (r *StockRepository) Tickers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT ticker FROM stock ORDER BY ticker`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock tickers: %w", err)
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
		return nil, fmt.Errorf("error iterating stock tickers: %w", err)
	}

	return tickers, nil
}
