package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/JonMunkholm/auctionboard/internal/config"
	"github.com/JonMunkholm/auctionboard/internal/core"
	_ "github.com/JonMunkholm/auctionboard/internal/core/views" // Register all views
	"github.com/JonMunkholm/auctionboard/internal/logging"
	"github.com/JonMunkholm/auctionboard/internal/smarttable"
	"github.com/JonMunkholm/auctionboard/internal/store"
	"github.com/JonMunkholm/auctionboard/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Info("configuration loaded", "config", cfg.String())

	collation, err := smarttable.ParseCollation(cfg.Views.Locale)
	if err != nil {
		slog.Error("invalid view locale", "locale", cfg.Views.Locale, "error", err)
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		slog.Error("failed to parse database URL", "error", err)
		os.Exit(1)
	}
	poolConfig.MaxConns = int32(cfg.Database.MaxConns)
	poolConfig.MinConns = int32(cfg.Database.MinConns)
	poolConfig.MaxConnLifetime = cfg.Database.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.Database.MaxConnIdleTime

	ctx := context.Background()
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if u, err := url.Parse(cfg.Database.URL); err == nil {
		slog.Info("connected to database", "name", strings.TrimPrefix(u.Path, "/"))
	} else {
		slog.Info("connected to database")
	}

	service := core.NewService(store.NewStore(pool), core.Options{
		SessionTTL:    cfg.Views.SessionTTL,
		MaxSessions:   cfg.Views.MaxSessions,
		SweepInterval: cfg.Views.SweepInterval,

		MaxConcurrentLoads: cfg.Views.MaxConcurrentLoads,
		LoadWait:           cfg.Views.LoadWait,

		Collation: collation,
	})

	for _, info := range service.Views() {
		slog.Debug("view registered", "key", info.Key, "label", info.Label)
	}
	slog.Info("views registered", "count", core.ViewCount())

	server := web.NewServer(service, cfg)

	// Background jobs stop on shutdown
	jobCtx, cancelJobs := context.WithCancel(context.Background())
	service.StartSessionSweeper(jobCtx)

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")
		cancelJobs()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
		if err := service.WaitForLoads(shutdownCtx); err != nil {
			slog.Warn("row loads still running at shutdown", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	<-shutdownDone
	slog.Info("server stopped")
}
