package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/api/handlers"
	custommiddleware "github.com/dmerino/portfolio-dashboard/internal/api/middleware"
	"github.com/dmerino/portfolio-dashboard/internal/config"
	"github.com/dmerino/portfolio-dashboard/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	fundService *service.FundService,
	stockService *service.StockService,
	quotes service.QuoteFetcher,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/fund", func(r chi.Router) {
			fundHandler := handlers.NewFundHandler(fundService)
			r.Get("/", fundHandler.Funds)
			r.Post("/", fundHandler.CreateFund)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Put("/", fundHandler.UpdateFund)
				r.Delete("/", fundHandler.DeleteFund)
			})
		})

		r.Route("/stock", func(r chi.Router) {
			stockHandler := handlers.NewStockHandler(stockService)
			r.Get("/", stockHandler.Stocks)
			r.Post("/", stockHandler.CreateStock)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateIDMiddleware)
				r.Put("/", stockHandler.UpdateStock)
				r.Delete("/", stockHandler.DeleteStock)
			})
		})

		r.Route("/quote", func(r chi.Router) {
			quoteHandler := handlers.NewQuoteHandler(quotes)
			r.Post("/refresh", quoteHandler.Refresh)
		})
	})

	return r
}
