package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/me/flightsched/internal/config"
	"github.com/me/flightsched/internal/logging"
	"github.com/me/flightsched/internal/retention"
	"github.com/me/flightsched/internal/scheduler"
	"github.com/me/flightsched/internal/server"
	"github.com/me/flightsched/internal/store"
)

func main() {
	var (
		addr      = flag.String("addr", "", "Listen address (default :8080)")
		logLevel  = flag.String("log-level", "", "Log level (debug, info, warn, error)")
		logFormat = flag.String("log-format", "", "Log format (text, json)")
		dbPath    = flag.String("db", "", "Database path (default ~/.flightsched/flightsched.db)")
		algorithm = flag.String("algorithm", "", "Default scheduling algorithm (sjf, scan, scan-step)")
		noMetrics = flag.Bool("no-metrics", false, "Disable the /metrics endpoint")
		keepDays  = flag.Int("retention-days", 0, "Delete archived runs older than this many days (0 keeps all)")
		debug     = flag.Bool("debug", false, "Shorthand for --log-level=debug")
		cfgFile   = flag.String("config", "", "Path to YAML config file")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Explicit flags win over file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-format":
			cfg.LogFormat = *logFormat
		case "db":
			cfg.DBPath = *dbPath
		case "algorithm":
			cfg.Algorithm = *algorithm
		case "no-metrics":
			cfg.MetricsEnabled = !*noMetrics
		case "retention-days":
			cfg.RetentionDays = *keepDays
		}
	})
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	if _, err := scheduler.ParseAlgorithm(cfg.Algorithm); err != nil {
		fmt.Fprintf(os.Stderr, "invalid algorithm: %v\n", err)
		os.Exit(1)
	}

	path, err := cfg.ResolveDBPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Open store and run migrations.
	st, err := store.NewSQLiteStore(path, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", path)

	srv := server.New(cfg, st, logger)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start archive retention in background.
	retCfg := retention.DefaultConfig()
	retCfg.MaxAge = time.Duration(cfg.RetentionDays) * 24 * time.Hour
	pruner := retention.NewLoop(st, retCfg, logger)
	go func() {
		if err := pruner.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("retention stopped", "error", err)
		}
	}()

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "algorithm", cfg.Algorithm, "metrics", cfg.MetricsEnabled)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
