package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/api/request"
	"github.com/dmerino/portfolio-dashboard/internal/model"
	"github.com/dmerino/portfolio-dashboard/internal/repository"
)

// StockService handles equity-related business logic. It mirrors
// FundService with the equity extensions: integer share counts and a
// sector dimension sourced from the quote provider.
type StockService struct {
	repo   *repository.StockRepository
	quotes QuoteFetcher
	log    zerolog.Logger
}

// NewStockService creates a new StockService with the provided dependencies.
func NewStockService(repo *repository.StockRepository, quotes QuoteFetcher, log zerolog.Logger) *StockService {
	return &StockService{
		repo:   repo,
		quotes: quotes,
		log:    log.With().Str("component", "stock-service").Logger(),
	}
}

// GetStocksWithMetrics retrieves all stored stocks enriched with live
// market metrics, plus the portfolio summary across them.
//
// Behaves exactly like FundService.GetFundsWithMetrics, with one addition:
// when a quote is available its provider-reported sector replaces the
// stored one, since the provider value is fresher than what the user typed.
func (s *StockService) GetStocksWithMetrics(ctx context.Context) ([]model.EnrichedStock, model.PortfolioSummary, error) {
	stocks, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("listing stocks failed")
		return []model.EnrichedStock{}, model.PortfolioSummary{}, err
	}

	enriched := make([]model.EnrichedStock, 0, len(stocks))
	var summary model.PortfolioSummary

	for _, st := range stocks {
		snap, err := s.quotes.Fetch(ctx, st.Ticker)
		if err != nil {
			s.log.Debug().Str("ticker", st.Ticker).Msg("quote unavailable, using stored price")
		}

		e := model.EnrichedStock{Stock: st}
		m, err := computeMetrics(st.PurchasePrice, float64(st.Shares), st.LastPrice, snap)
		if err != nil {
			s.log.Error().Err(err).Int64("id", st.ID).Msg("stock left unenriched")
			enriched = append(enriched, e)
			continue
		}
		e.Metrics = m
		if snap != nil {
			if snap.Name != "" {
				e.Name = snap.Name
			}
			if snap.Sector != "" {
				e.Sector = snap.Sector
			}
		}

		enriched = append(enriched, e)
		addToSummary(&summary, m)
	}

	finalizeSummary(&summary)
	return enriched, summary, nil
}

// CreateStock stores a new equity position. The store assigns the ID and
// the quote cache is invalidated.
func (s *StockService) CreateStock(ctx context.Context, req request.CreateStockRequest) (model.Stock, error) {
	stock := model.Stock{
		Name:          req.Name,
		Ticker:        req.Ticker,
		Sector:        defaultSector(req.Sector),
		PurchasePrice: req.PurchasePrice,
		Shares:        req.Shares,
		PurchaseDate:  req.PurchaseDate,
		LastPrice:     req.LastPrice,
	}

	saved, err := s.repo.Upsert(ctx, stock)
	if err != nil {
		s.log.Error().Err(err).Str("ticker", stock.Ticker).Msg("creating stock failed")
		return model.Stock{}, err
	}

	s.quotes.Invalidate()
	return saved, nil
}

// UpdateStock replaces the stored fields of an existing equity position.
// Returns apperrors.ErrStockNotFound if the ID does not exist.
func (s *StockService) UpdateStock(ctx context.Context, id int64, req request.UpdateStockRequest) (model.Stock, error) {
	stock := model.Stock{
		ID:            id,
		Name:          req.Name,
		Ticker:        req.Ticker,
		Sector:        defaultSector(req.Sector),
		PurchasePrice: req.PurchasePrice,
		Shares:        req.Shares,
		PurchaseDate:  req.PurchaseDate,
		LastPrice:     req.LastPrice,
	}

	saved, err := s.repo.Upsert(ctx, stock)
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("updating stock failed")
		return model.Stock{}, err
	}

	s.quotes.Invalidate()
	return saved, nil
}

// DeleteStock removes an equity position by ID.
// Returns apperrors.ErrStockNotFound if the ID does not exist.
func (s *StockService) DeleteStock(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("deleting stock failed")
		return err
	}

	s.quotes.Invalidate()
	return nil
}

// Tickers returns the distinct ticker symbols across all stored stocks.
// Used by the quote warm-up job.
func (s *StockService) Tickers(ctx context.Context) ([]string, error) {
	return s.repo.Tickers(ctx)
}

func defaultSector(sector string) string {
	if sector == "" {
		return model.SectorUnavailable
	}
	return sector
}
