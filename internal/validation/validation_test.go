package validation_test

import (
	"errors"
	"testing"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/validation"
)

func TestValidateID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"valid ID", "42", 42, false},
		{"zero is invalid", "0", 0, true},
		{"negative is invalid", "-1", 0, true},
		{"non-numeric is invalid", "abc", 0, true},
		{"empty is invalid", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.ValidateID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrInvalidID) {
				t.Errorf("Expected ErrInvalidID, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateID(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid date", "2025-03-01", nil},
		{"empty", "", apperrors.ErrMissingRequiredField},
		{"wrong format", "01/03/2025", apperrors.ErrInvalidDate},
		{"impossible date", "2025-02-30", apperrors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateDate(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDate(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDate(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCreateFund(t *testing.T) {
	valid := request.CreateFundRequest{
		Name:           "Global Index",
		Ticker:         "AAA",
		InvestmentType: "RV",
		PurchasePrice:  100,
		Quantity:       10,
		PurchaseDate:   "2025-03-01",
	}

	t.Run("valid request passes", func(t *testing.T) {
		if err := validation.ValidateCreateFund(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("missing ticker", func(t *testing.T) {
		req := valid
		req.Ticker = ""
		if err := validation.ValidateCreateFund(req); !errors.Is(err, apperrors.ErrMissingRequiredField) {
			t.Errorf("Expected ErrMissingRequiredField, got %v", err)
		}
	})

	t.Run("invalid investment type", func(t *testing.T) {
		req := valid
		req.InvestmentType = "XX"
		if err := validation.ValidateCreateFund(req); !errors.Is(err, apperrors.ErrInvalidInvestmentType) {
			t.Errorf("Expected ErrInvalidInvestmentType, got %v", err)
		}
	})

	t.Run("negative purchase price", func(t *testing.T) {
		req := valid
		req.PurchasePrice = -1
		if err := validation.ValidateCreateFund(req); !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})
}

func TestValidateCreateStock(t *testing.T) {
	valid := request.CreateStockRequest{
		Name:          "Acme Corp",
		Ticker:        "ACME",
		PurchasePrice: 50,
		Shares:        20,
		PurchaseDate:  "2025-03-01",
	}

	t.Run("valid request passes", func(t *testing.T) {
		if err := validation.ValidateCreateStock(valid); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("empty sector is allowed", func(t *testing.T) {
		req := valid
		req.Sector = ""
		if err := validation.ValidateCreateStock(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("negative shares", func(t *testing.T) {
		req := valid
		req.Shares = -5
		if err := validation.ValidateCreateStock(req); !errors.Is(err, apperrors.ErrNegativeAmount) {
			t.Errorf("Expected ErrNegativeAmount, got %v", err)
		}
	})
}
