package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"github.com/ammusto/khazain-browser/internal/catalog"
	"github.com/ammusto/khazain-browser/internal/config"
	"github.com/ammusto/khazain-browser/internal/fetch"
	"github.com/ammusto/khazain-browser/internal/http"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Build the catalog store over the data directory
	fetcher := fetch.NewDirFetcher(cfg.DataDir)
	store := catalog.NewStore(fetcher, logger)
	slog.Info("Catalog store initialized", "data_dir", cfg.DataDir)

	// Create router with dependencies
	deps := &http.Deps{
		Store: store,
	}
	router := http.NewRouter(deps)

	// Warm the manuscript table in the background; the first request would
	// trigger the same load, this just surfaces a bad data directory early.
	go func() {
		if ms, err := store.Manuscripts(context.Background()); err != nil {
			slog.Error("Initial catalog load failed", "error", err)
		} else {
			slog.Info("Catalog warmed", "records", len(ms))
		}
	}()

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
