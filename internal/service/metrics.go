package service

import (
	"context"
	"fmt"
	"math"

	"github.com/dmerino/portfolio-dashboard/internal/apperrors"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/money"
	"github.com/dmerino/portfolio-dashboard/internal/quote"
)

// QuoteFetcher is the quote dependency shared by the fund and stock
// services. Satisfied by *quote.Fetcher and by test stubs.
type QuoteFetcher interface {
	// Fetch returns the snapshot for a ticker, or quote.ErrUnavailable.
	Fetch(ctx context.Context, ticker string) (*quote.Snapshot, error)

	// Invalidate drops all cached quotes.
	Invalidate()
}

// computeMetrics derives the per-position metrics from a stored position and
// its quote snapshot. This is the single calculation engine used by both
// asset classes; funds and stocks differ only in how quantity is stored.
//
// When snap is nil (quote unavailable) the position is valued at lastPrice,
// the last price stored with the record, and all change fields are zero.
// Percentage calculations guard against zero denominators and yield 0.
//
// Returns an error only for a malformed stored record (non-finite numbers).
// Callers log it and keep the record unenriched; nothing is dropped.
func computeMetrics(purchasePrice, quantity, lastPrice float64, snap *quote.Snapshot) (model.Metrics, error) {
	if !isFinite(purchasePrice) || !isFinite(quantity) || !isFinite(lastPrice) {
		return model.Metrics{}, fmt.Errorf("%w: non-finite stored value", apperrors.ErrComputation)
	}

	current := lastPrice
	var dailyChange, dailyChangePct, ytdChangePct float64

	if snap != nil {
		current = snap.CurrentPrice
		dailyChange = money.Round2(current - snap.PreviousClose)
		dailyChangePct = money.PctChange(current, snap.PreviousClose)
		ytdChangePct = money.PctChange(current, snap.YearStartPrice)
	}

	return model.Metrics{
		CurrentPrice:   money.Round2(current),
		DailyChange:    dailyChange,
		DailyChangePct: dailyChangePct,
		YTDChangePct:   ytdChangePct,
		TotalGain:      money.Round2((current - purchasePrice) * quantity),
		TotalGainPct:   money.PctChange(current, purchasePrice),
		Invested:       money.Round2(purchasePrice * quantity),
		CurrentValue:   money.Round2(current * quantity),
	}, nil
}

// addToSummary accumulates one position's totals into the running summary.
// Per-position values are already rounded, so the summary drifts by at most
// half a cent per position.
func addToSummary(sum *model.PortfolioSummary, m model.Metrics) {
	sum.TotalInvested += m.Invested
	sum.TotalCurrentValue += m.CurrentValue
	sum.TotalGain += m.TotalGain
}

// finalizeSummary rounds the accumulated totals and derives the aggregate
// gain percentage, guarding against an empty or zero-cost portfolio.
func finalizeSummary(sum *model.PortfolioSummary) {
	if sum.TotalInvested > 0 {
		sum.TotalGainPct = money.Round2(sum.TotalGain / sum.TotalInvested * 100)
	}
	sum.TotalInvested = money.Round2(sum.TotalInvested)
	sum.TotalCurrentValue = money.Round2(sum.TotalCurrentValue)
	sum.TotalGain = money.Round2(sum.TotalGain)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
