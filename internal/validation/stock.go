package validation

import (
	"fmt"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
)

// ValidateCreateStock validates the payload for creating an equity position.
func ValidateCreateStock(req request.CreateStockRequest) error {
	return validateStockFields(req.Ticker, req.PurchasePrice, req.Shares, req.LastPrice, req.PurchaseDate)
}

// ValidateUpdateStock validates the payload for updating an equity position.
func ValidateUpdateStock(req request.UpdateStockRequest) error {
	return validateStockFields(req.Ticker, req.PurchasePrice, req.Shares, req.LastPrice, req.PurchaseDate)
}

func validateStockFields(ticker string, purchasePrice float64, shares int64, lastPrice float64, purchaseDate string) error {
	if err := ValidateTicker(ticker); err != nil {
		return err
	}
	if err := ValidateAmount("purchasePrice", purchasePrice); err != nil {
		return err
	}
	if shares < 0 {
		return fmt.Errorf("%w: shares", apperrors.ErrNegativeAmount)
	}
	if err := ValidateAmount("lastPrice", lastPrice); err != nil {
		return err
	}
	return ValidateDate(purchaseDate)
}
