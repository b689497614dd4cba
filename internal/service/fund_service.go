package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/repository"
)

// FundService handles fund-related business logic: CRUD over stored fund
// positions and the quote-enrichment pipeline for reads.
type FundService struct {
	repo   *repository.FundRepository
	quotes QuoteFetcher
	log    zerolog.Logger
}

// NewFundService creates a new FundService with the provided dependencies.
func NewFundService(repo *repository.FundRepository, quotes QuoteFetcher, log zerolog.Logger) *FundService {
	return &FundService{
		repo:   repo,
		quotes: quotes,
		log:    log.With().Str("component", "fund-service").Logger(),
	}
}

// GetFundsWithMetrics retrieves all stored funds enriched with live market
// metrics, plus the portfolio summary across them.
//
// Positions are processed in store order, one quote fetch per position
// (cache hits absorb duplicate tickers). A position whose quote is
// unavailable still contributes with zero deltas, valued at its stored last
// price. A malformed record is logged and included unenriched.
//
// On a store failure the error is returned together with an empty result,
// so the caller can choose between degrading and propagating.
func (s *FundService) GetFundsWithMetrics(ctx context.Context) ([]model.EnrichedFund, model.PortfolioSummary, error) {
	funds, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing funds failed")
		return []model.EnrichedFund{}, model.PortfolioSummary{}, err
	}

	enriched := make([]model.EnrichedFund, 0, len(funds))
	var summary model.PortfolioSummary

	for _, f := range funds {
		snap, err := s.quotes.Fetch(ctx, f.Ticker)
		if err != nil {
			s.log.Debug().Str("ticker", f.Ticker).Msg("quote unavailable, using stored price")
		}

		e := model.EnrichedFund{Fund: f}
		m, err := computeMetrics(f.PurchasePrice, f.Quantity, f.LastPrice, snap)
		if err != nil {
			s.log.Error().Err(err).Int64("id", f.ID).Msg("fund left unenriched")
			enriched = append(enriched, e)
			continue
		}
		e.Metrics = m
		if snap != nil && snap.Name != "" {
			e.Name = snap.Name
		}

		enriched = append(enriched, e)
		addToSummary(&summary, m)
	}

	finalizeSummary(&summary)
	return enriched, summary, nil
}

// CreateFund validates nothing itself (the handler does) and stores a new
// fund position. The store assigns the ID. The quote cache is invalidated
// so the next render reflects the new position immediately.
func (s *FundService) CreateFund(ctx context.Context, req request.CreateFundRequest) (model.Fund, error) {
	fund := model.Fund{
		Name:           req.Name,
		Ticker:         req.Ticker,
		InvestmentType: req.InvestmentType,
		PurchasePrice:  req.PurchasePrice,
		Quantity:       req.Quantity,
		PurchaseDate:   req.PurchaseDate,
		LastPrice:      req.LastPrice,
	}

	saved, err := s.repo.Upsert(ctx, fund)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", fund.Ticker).Msg("creating fund failed")
		return model.Fund{}, err
	}

	s.quotes.Invalidate()
	return saved, nil
}

// UpdateFund replaces the stored fields of an existing fund position.
// Returns apperrors.ErrFundNotFound if the ID does not exist.
func (s *FundService) UpdateFund(ctx context.Context, id int64, req request.UpdateFundRequest) (model.Fund, error) {
	fund := model.Fund{
		ID:             id,
		Name:           req.Name,
		Ticker:         req.Ticker,
		InvestmentType: req.InvestmentType,
		PurchasePrice:  req.PurchasePrice,
		Quantity:       req.Quantity,
		PurchaseDate:   req.PurchaseDate,
		LastPrice:      req.LastPrice,
	}

	saved, err := s.repo.Upsert(ctx, fund)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("updating fund failed")
		return model.Fund{}, err
	}

	s.quotes.Invalidate()
	return saved, nil
}

// DeleteFund removes a fund position by ID.
// Returns apperrors.ErrFundNotFound if the ID does not exist.
func (s *FundService) DeleteFund(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("deleting fund failed")
		return err
	}

	s.quotes.Invalidate()
	return nil
}

// Tickers returns the distinct ticker symbols across all stored funds.
// Used by the quote warm-up job.
func (s *FundService) Tickers(ctx context.Context) ([]string, error) {
	return s.repo.Tickers(ctx)
}
