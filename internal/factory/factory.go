package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/velmark/screenhunt/internal/dependencies/clock"
	"github.com/velmark/screenhunt/internal/services/event"
	"github.com/velmark/screenhunt/internal/services/ledger"
	"github.com/velmark/screenhunt/internal/services/payout"
	"github.com/velmark/screenhunt/internal/services/registry"
	"github.com/velmark/screenhunt/internal/services/report"
	"github.com/velmark/screenhunt/internal/storage"
	"github.com/velmark/screenhunt/internal/storage/memory"
	sqlitestorage "github.com/velmark/screenhunt/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	Registry *registry.Service
	Ledger   *ledger.Service
	Report   *report.Service
	Event    *event.Service
	Payout   *payout.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "sqlite")
	// If empty, defaults to "sqlite"
	StorageType string
	// SQLitePath is the database file path (required for sqlite storage)
	SQLitePath string
	// EventWindow bounds the submission period; a zero window means the
	// event is never active
	EventWindow event.Window
	// PayoutAmount is paid per approved screenshot; zero means the default
	PayoutAmount int64
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeSQLite
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'sqlite'")
	}

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.EventWindow, cfg.PayoutAmount, logger), nil
}

// Close releases the storage backend if it holds external resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, window event.Window, payoutAmount int64, logger *slog.Logger) *App {
	registryService := registry.New(store, clk, logger)
	ledgerService := ledger.New(store, clk, logger)
	reportService := report.New(store, logger)
	eventService := event.New(store, clk, window, logger)
	payoutService := payout.New(reportService, payoutAmount)

	return &App{
		Storage:  store,
		Clock:    clk,
		Registry: registryService,
		Ledger:   ledgerService,
		Report:   reportService,
		Event:    eventService,
		Payout:   payoutService,
	}
}
