// Package validation provides field-level checks for incoming requests.
package validation

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
)

// ValidateID checks that a URL parameter is a positive integer ID and
// returns the parsed value.
func ValidateID(id string) (int64, error) {
	parsed, err := strconv.ParseInt(id, 10, 64)
	if err != nil || parsed <= 0 {
		return 0, fmt.Errorf("%w: %s", apperrors.ErrInvalidID, id)
	}
	return parsed, nil
}

// ValidateTicker checks that a ticker symbol is present. No further local
// validation is performed; the quote provider is the authority on symbols.
func ValidateTicker(ticker string) error {
	if ticker == "" {
		return fmt.Errorf("%w: ticker", apperrors.ErrMissingRequiredField)
	}
	return nil
}

// ValidateDate checks that a date is in YYYY-MM-DD format.
func ValidateDate(date string) error {
	if date == "" {
		return fmt.Errorf("%w: date", apperrors.ErrMissingRequiredField)
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidDate, date)
	}
	return nil
}

// ValidateAmount checks that a monetary or quantity field is not negative.
func ValidateAmount(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrNegativeAmount, name)
	}
	return nil
}
