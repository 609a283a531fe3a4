package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/adsalert/payverify-be/internal/commandbus"
	"github.com/adsalert/payverify-be/internal/config"
	"github.com/adsalert/payverify-be/internal/domain"
	"github.com/adsalert/payverify-be/internal/handler"
	"github.com/adsalert/payverify-be/internal/notify"
	"github.com/adsalert/payverify-be/internal/ocr"
	"github.com/adsalert/payverify-be/internal/server"
	"github.com/adsalert/payverify-be/internal/storage"
	"github.com/adsalert/payverify-be/internal/verification"
	"github.com/adsalert/payverify-be/pkg/logger"
)

// store is the composite persistence surface the engine needs; both the
// memory and the Postgres implementations satisfy it.
type store interface {
	domain.InvoiceStore
	domain.AttemptStore
	domain.CommandLog
	domain.InventoryMutator
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting payment verification service")

	var repo store
	if cfg.Database.URL != "" {
		pg, err := storage.NewPostgresStore(cfg.Database.URL)
		if err != nil {
			log.Fatal(ctx, "Failed to connect to database",
				"error", err,
			)
		}
		repo = pg
		log.Info(ctx, "Postgres store initialized")
	} else {
		repo = storage.NewMemoryStore()
		log.Info(ctx, "Memory store initialized")
	}

	provider := ocr.NewHTTPProvider(ocr.HTTPProviderConfig{
		BaseURL: cfg.OCR.BaseURL,
		APIKey:  cfg.OCR.APIKey,
		Timeout: cfg.OCR.Timeout,
	}, log)
	extractor := ocr.NewFieldExtractor(provider, log)

	bus := commandbus.New(log, &commandbus.Config{
		ChannelBuffer: cfg.Commands.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	})

	notifier := notify.NewLogNotifier(log)
	executor := commandbus.NewExecutor(repo, repo, notifier, repo, log, cfg.Worker.PoolSize)
	bus.Subscribe(executor)

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start command dispatcher",
			"error", err,
		)
	}
	log.Info(ctx, "Command dispatcher started",
		"worker_count", cfg.Worker.PoolSize,
	)

	resolver := verification.NewExpectationResolver(repo, log)
	scorer := verification.NewMatchScorer(verification.ScoringConfig(cfg.Scoring))
	policy := verification.NewDecisionPolicy(verification.DecisionConfig(cfg.Decision))
	service := verification.NewService(extractor, resolver, scorer, policy, repo, bus, log)

	verificationHandler := handler.NewVerificationHandler(service, log)
	healthHandler := handler.NewHealthHandler()

	srv := server.New(cfg, log, verificationHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Service started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then drain in-flight commands.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Command dispatcher shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Service stopped gracefully")
}
