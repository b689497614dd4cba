package validation

import (
	"fmt"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
)

// ValidateCreateFund validates the payload for creating a fund position.
func ValidateCreateFund(req request.CreateFundRequest) error {
	return validateFundFields(req.Ticker, req.InvestmentType, req.PurchasePrice, req.Quantity, req.LastPrice, req.PurchaseDate)
}

// ValidateUpdateFund validates the payload for updating a fund position.
func ValidateUpdateFund(req request.UpdateFundRequest) error {
	return validateFundFields(req.Ticker, req.InvestmentType, req.PurchasePrice, req.Quantity, req.LastPrice, req.PurchaseDate)
}

func validateFundFields(ticker, investmentType string, purchasePrice, quantity, lastPrice float64, purchaseDate string) error {
	if err := ValidateTicker(ticker); err != nil {
		return err
	}
	if investmentType != model.InvestmentTypeFixedIncome && investmentType != model.InvestmentTypeVariableIncome {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInvestmentType, investmentType)
	}
	if err := ValidateAmount("purchasePrice", purchasePrice); err != nil {
		return err
	}
	if err := ValidateAmount("quantity", quantity); err != nil {
		return err
	}
	if err := ValidateAmount("lastPrice", lastPrice); err != nil {
		return err
	}
	return ValidateDate(purchaseDate)
}
