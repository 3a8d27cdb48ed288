package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/velmark/screenhunt/internal/api"
	"github.com/velmark/screenhunt/internal/factory"
	"github.com/velmark/screenhunt/internal/services/event"
)

type serverConfig struct {
	Host         string    `env:"SCREENHUNT_HOST"`
	Port         int       `env:"SCREENHUNT_PORT" envDefault:"8080"`
	StorageType  string    `env:"SCREENHUNT_STORAGE" envDefault:"sqlite"`
	DBPath       string    `env:"SCREENHUNT_DB_PATH" envDefault:"event_data.db"`
	AdminToken   string    `env:"SCREENHUNT_ADMIN_TOKEN"`
	EventStart   time.Time `env:"SCREENHUNT_EVENT_START"`
	EventEnd     time.Time `env:"SCREENHUNT_EVENT_END"`
	PayoutAmount int64     `env:"SCREENHUNT_PAYOUT_AMOUNT"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real environment takes precedence
	_ = godotenv.Load()

	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		logger.Error("failed to parse configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.AdminToken == "" {
		logger.Warn("SCREENHUNT_ADMIN_TOKEN not set, moderation endpoints disabled")
	}

	// Create application factory
	app, err := factory.New(factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		SQLitePath:  cfg.DBPath,
		EventWindow: event.Window{
			Start: cfg.EventStart,
			End:   cfg.EventEnd,
		},
		PayoutAmount: cfg.PayoutAmount,
	})
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:     logger,
		Registry:   app.Registry,
		Ledger:     app.Ledger,
		Report:     app.Report,
		Event:      app.Event,
		Payout:     app.Payout,
		AdminToken: cfg.AdminToken,
	})

	// Create server
	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port
	server := api.NewServer(router, serverCfg, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
