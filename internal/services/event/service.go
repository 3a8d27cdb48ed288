package event

import (
	"context"
	"log/slog"
	"time"

	"github.com/velmark/screenhunt/internal/dependencies/clock"
	"github.com/velmark/screenhunt/internal/storage"
)

// Window is the time span during which submissions are accepted
type Window struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether no window has been configured
func (w Window) IsZero() bool {
	return w.Start.IsZero() && w.End.IsZero()
}

// Service owns event-lifecycle concerns: the submission time window and
// the between-events full reset
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	window  Window
	logger  *slog.Logger
}

// New creates a new event service
func New(storage storage.Storage, clock clock.Clock, window Window, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		window:  window,
		logger:  logger,
	}
}

// Active reports whether submissions are currently accepted.
// Bounds are inclusive. A missing or inverted window means inactive.
func (s *Service) Active() bool {
	if s.window.IsZero() || s.window.End.Before(s.window.Start) {
		return false
	}
	now := s.clock.Now().UTC()
	return !now.Before(s.window.Start) && !now.After(s.window.End)
}

// Window returns the configured event bounds for rendering
func (s *Service) Window() Window {
	return s.window
}

// Reset clears all players and submissions. Destructive and irreversible;
// used between events. Requires that no other write is in flight, which the
// storage layer guarantees by running it in a single transaction.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.storage.Reset(ctx); err != nil {
		return err
	}
	s.logger.Warn("all event data reset")
	return nil
}
