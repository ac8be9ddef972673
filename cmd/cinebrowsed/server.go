package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	v1 "github.com/vmunix/cinebrowse/internal/api/v1"
	"github.com/vmunix/cinebrowse/internal/browse"
	"github.com/vmunix/cinebrowse/internal/catalog"
	"github.com/vmunix/cinebrowse/internal/config"
	"github.com/vmunix/cinebrowse/internal/dataset"
	"github.com/vmunix/cinebrowse/internal/metrics"
	"github.com/vmunix/cinebrowse/internal/server"
	"github.com/vmunix/cinebrowse/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	if r.status == 200 { // Only capture first WriteHeader call
		r.status = code
	}
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler, log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		log.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func runServer(ctx context.Context, configPath string) error {
	if configPath == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = found
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	handler, err := buildHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("server starting",
		"addr", cfg.Server.Addr(),
		"config", configPath,
		"dataset", cfg.Dataset.Path,
		"cache_capacity", cfg.Cache.Capacity,
		"metrics", cfg.Metrics.Enabled,
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(handler, server.Config{Addr: cfg.Server.Addr()}, logger.With("component", "http"))
	return runner.Run(ctx)
}

// buildHandler wires the catalog, dataset and API into one handler.
func buildHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	// === Dataset (optional) ===
	var (
		ds       *dataset.Dataset
		recs     browse.Recommender
		datasetV v1.Dataset
	)
	if cfg.Dataset.Path != "" {
		loaded, err := dataset.Open(ctx, cfg.Dataset.Path)
		if err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
		ds = loaded
		recs, datasetV = ds, ds
		logger.Info("dataset loaded", "path", cfg.Dataset.Path, "movies", ds.Len())
	}

	// === Catalog ===
	client := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithImageBaseURL(cfg.TMDB.ImageBaseURL),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithHTTPClient(&http.Client{Timeout: cfg.TMDB.Timeout}),
	)

	m := metrics.New()
	cat := catalog.New(client, catalog.Config{
		Capacity:      cfg.Cache.Capacity,
		CacheFailures: cfg.Cache.CacheFailures,
	}, logger.With("component", "catalog"),
		catalog.WithObserver(m),
		catalog.WithFailureRecorder(m),
	)

	pages := browse.NewAssembler(cat, recs, logger.With("component", "browse"))

	// === HTTP Setup ===
	mux := http.NewServeMux()

	apiV1, err := v1.New(v1.ServerDeps{
		Catalog: cat,
		Pages:   pages,
		Dataset: datasetV,
		Logger:  logger.With("component", "api"),
	}, v1.Config{Version: version})
	if err != nil {
		return nil, err
	}
	apiV1.RegisterRoutes(mux)

	var handler http.Handler = mux
	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, m.Handler())
		handler = m.Middleware(handler)
	}
	return logRequests(handler, logger), nil
}
