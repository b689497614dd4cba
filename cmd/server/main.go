package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dmerino/portfolio-dashboard/internal/api"
	"github.com/dmerino/portfolio-dashboard/internal/config"
	"github.com/dmerino/portfolio-dashboard/internal/database"
	"github.com/dmerino/portfolio-dashboard/internal/jobs"
	"github.com/dmerino/portfolio-dashboard/internal/quote"
	"github.com/dmerino/portfolio-dashboard/internal/repository"
	"github.com/dmerino/portfolio-dashboard/internal/scheduler"
	"github.com/dmerino/portfolio-dashboard/internal/service"
	"github.com/dmerino/portfolio-dashboard/internal/yahoo"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	log.Info().Str("path", cfg.Database.Path).Msg("connected to database")

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	stockRepo := repository.NewStockRepository(db)

	// Create the quote fetcher with its TTL cache
	quoteCache := quote.NewCache(cfg.Quote.TTL)
	quoteFetcher := quote.NewFetcher(yahoo.NewFinanceClient(), quoteCache, log)

	// Create services
	systemService := service.NewSystemService(db)
	fundService := service.NewFundService(fundRepo, quoteFetcher, log)
	stockService := service.NewStockService(stockRepo, quoteFetcher, log)

	// Background quote cache warm-up
	sched := scheduler.New(log)
	if cfg.Quote.WarmupEnabled {
		warmup := jobs.NewQuoteWarmup(quoteFetcher, log, fundService, stockService)
		if err := sched.AddJob(cfg.Quote.WarmupSchedule, warmup); err != nil {
			log.Fatal().Err(err).Msg("failed to register warm-up job")
		}
	}
	sched.Start()
	defer sched.Stop()

	// Create router
	router := api.NewRouter(systemService, fundService, stockService, quoteFetcher, cfg, log)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
