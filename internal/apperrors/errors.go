package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrFundNotFound indicates that a fund with the given ID does not exist.
	ErrFundNotFound = errors.New("fund not found")

	// ErrStockNotFound indicates that a stock with the given ID does not exist.
	ErrStockNotFound = errors.New("stock not found")
)

// Business logic errors represent validation failures or constraint
// violations. These errors indicate that an operation cannot be completed
// due to business rules.
var (
	// ErrInvalidID indicates that a provided ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrMissingRequiredField indicates that a required field is missing or empty.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidInvestmentType indicates a fund type outside the RF/RV enum.
	ErrInvalidInvestmentType = errors.New("invalid investment type")

	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD format.
	ErrInvalidDate = errors.New("invalid date format")
)

// Operation failure errors represent system-level failures when retrieving
// or processing data.
var (
	ErrFailedToSaveFund    = errors.New("failed to save fund")
	ErrFailedToSaveStock   = errors.New("failed to save stock")
	ErrFailedToDeleteFund  = errors.New("failed to delete fund")
	ErrFailedToDeleteStock = errors.New("failed to delete stock")

	// ErrComputation indicates a malformed stored record during metric
	// derivation. The record is returned unenriched, never dropped.
	ErrComputation = errors.New("metric computation failed")
)
