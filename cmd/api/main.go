package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"zucit/internal/api"
	"zucit/internal/config"
	"zucit/internal/data"
	"zucit/internal/logging"
	"zucit/internal/metrics"
	"zucit/internal/projection"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfgPath := flag.String("config", os.Getenv(config.EnvConfig), "Path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", *cfgPath, "error", err)
		os.Exit(1)
	}

	logger, err := logging.Init(cfg.Logging)
	if err != nil {
		slog.Error("failed to init logging", "error", err)
		os.Exit(1)
	}

	catalog, err := data.LoadCatalogOrDefault(cfg.CatalogFile)
	if err != nil {
		logger.Error("failed to load company catalog", "path", cfg.CatalogFile, "error", err)
		os.Exit(1)
	}

	if !cfg.Server.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	params := cfg.Economics.ToModelParams()
	router := api.NewRouter(api.Deps{
		Engine:    projection.New(params),
		Catalog:   catalog,
		Metrics:   metrics.New(),
		Logger:    logger,
		RateLimit: cfg.RateLimit,
		StaticDir: cfg.Server.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("starting API server",
			"addr", srv.Addr,
			"debug", cfg.Server.Debug,
			"companies", catalog.Len(),
			"zucman_tax_rate", params.ZucmanTaxRate,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
