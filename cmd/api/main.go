package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dreamnest/dreamnest-api/internal/api/router"
	"github.com/dreamnest/dreamnest-api/internal/catalog"
	"github.com/dreamnest/dreamnest-api/internal/config"
	"github.com/dreamnest/dreamnest-api/internal/followups"
	"github.com/dreamnest/dreamnest-api/internal/http/handlers"
	"github.com/dreamnest/dreamnest-api/internal/leads"
	"github.com/dreamnest/dreamnest-api/internal/observability/metrics"
	"github.com/dreamnest/dreamnest-api/internal/quotations"
	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

func main() {
	// Load .env file if present (development convenience)
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	logger.Info("starting DreamNest API",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	// Connect to the document store when a URL is configured; fall back
	// to in-memory repositories otherwise so the API stays usable in
	// development and tests.
	var st *store.Store
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		s, err := store.Connect(ctx, cfg.DatabaseURL, cfg.DatabaseName, logger)
		cancel()
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		st = s
		logger.Info("connected to database", "database", cfg.DatabaseName)
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory repositories")
	}

	var (
		leadsRepo      leads.Repository
		followUpsRepo  followups.Repository
		quotationsRepo quotations.Repository
		catalogRepo    catalog.Repository
	)
	if st != nil {
		leadsRepo = leads.NewMongoRepository(st)
		followUpsRepo = followups.NewMongoRepository(st)
		quotationsRepo = quotations.NewMongoRepository(st)
		catalogRepo = catalog.NewMongoRepository(st)
	} else {
		leadsRepo = leads.NewInMemoryRepository()
		followUpsRepo = followups.NewInMemoryRepository()
		quotationsRepo = quotations.NewInMemoryRepository()
		catalogRepo = catalog.NewInMemoryRepository()
	}

	httpMetrics := metrics.NewHTTPMetrics(nil)

	handler := router.New(&router.Config{
		Logger:             logger,
		System:             handlers.NewSystemHandler(st, cfg.DatabaseURL != "", logger),
		Catalog:            catalog.NewHandler(catalogRepo, logger),
		Leads:              leads.NewHandler(leadsRepo, logger),
		FollowUps:          followups.NewHandler(followUpsRepo, leadsRepo, logger),
		Quotations:         quotations.NewHandler(quotationsRepo, leadsRepo, logger),
		HTTPMetrics:        httpMetrics,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if st != nil {
		if err := st.Close(ctx); err != nil {
			logger.Error("database disconnect failed", "error", err)
		}
	}

	logger.Info("server stopped")
}
