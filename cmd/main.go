package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/larmor/internal/adapters/seed"
	app "github.com/okian/larmor/internal/app"
	"github.com/okian/larmor/internal/config"
	"github.com/okian/larmor/pkg/logger"
	"github.com/okian/larmor/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Optional Prometheus exposition listener.
	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))
		metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			log.Info(ctx, "starting metrics listener", logger.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error(ctx, "metrics listener failed", logger.Error(err))
			}
		}()
	}

	// Create and start the service with configuration options
	svc := app.New(
		app.WithLogger(log),
		app.WithCacheDir(cfg.CacheDir),
		app.WithAPIURL(cfg.APIURL),
		app.WithStructureURL(cfg.StructureURL),
		app.WithHTTPTimeout(time.Duration(cfg.HTTPTimeoutMS)*time.Millisecond),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	ids := entryList(cfg)
	log.Info(ctx, "processing entries", logger.Int("count", len(ids)))

	sets := svc.Run(ctx, ids)

	total := 0
	for _, set := range sets {
		total += set.Total()
	}
	log.Info(ctx, "run complete",
		logger.Int("entries_requested", len(ids)),
		logger.Int("entries_normalized", len(sets)),
		logger.Int("measurements", total),
	)

	if metricsSrv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "metrics listener shutdown failed", logger.Error(err))
		}
	}
}

// entryList resolves which identifiers to process: explicitly configured
// entries win, otherwise the seed catalog of well-characterized proteins.
func entryList(cfg *config.Config) []int {
	if len(cfg.Entries) > 0 {
		return cfg.Entries
	}
	return seed.EntryIDs()
}
