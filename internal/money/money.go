// Package money provides rounding and percentage helpers shared by the
// quote fetcher and the metrics calculator. All monetary and percentage
// figures in the system are emitted rounded to two decimal places.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a value to two decimal places using half-up rounding.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// PctChange returns the percentage change from base to current, rounded to
// two decimals. Returns 0 when base is 0 so callers never divide by zero.
func PctChange(current, base float64) float64 {
	if base == 0 {
		return 0
	}
	return Round2((current - base) / base * 100)
}
