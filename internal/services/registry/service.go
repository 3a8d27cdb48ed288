package registry

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/velmark/screenhunt/internal/dependencies/clock"
	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage"
)

// Service manages player registration and standing.
//
// Registration is one-shot: an identity that already has a row can never
// re-register with a different static ID or nickname.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new registry service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Register creates a player row for the given identity.
// Returns model.ErrPlayerExists without writing anything when the identity
// is already registered. Static ID and nickname are stored trimmed; callers
// own rejecting empty values before this point.
func (s *Service) Register(ctx context.Context, id model.PlayerID, staticID, nickname string) (*model.Player, error) {
	player := &model.Player{
		ID:           id,
		StaticID:     strings.TrimSpace(staticID),
		Nickname:     strings.TrimSpace(nickname),
		RegisteredAt: s.clock.Now().UTC(),
		Disqualified: false,
	}

	if err := s.storage.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player registered",
		slog.String("player_id", string(id)),
		slog.String("nickname", player.Nickname),
	)
	return player, nil
}

// Get returns the player for the given identity, or model.ErrPlayerNotFound
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	return s.storage.GetPlayer(ctx, id)
}

// IsDisqualified reports whether the player is currently disqualified.
// Unknown identities are not disqualified: a non-player cannot be.
func (s *Service) IsDisqualified(ctx context.Context, id model.PlayerID) (bool, error) {
	player, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return false, nil
		}
		return false, err
	}
	return player.Disqualified, nil
}

// Disqualify marks the player disqualified and, atomically, invalidates
// every submission the player owns. Idempotent in effect.
func (s *Service) Disqualify(ctx context.Context, id model.PlayerID) error {
	if err := s.storage.SetDisqualified(ctx, id, true); err != nil {
		return err
	}
	s.logger.Info("player disqualified", slog.String("player_id", string(id)))
	return nil
}

// Reinstate reverses a disqualification, restoring validity on all of the
// player's submissions. Disqualification is the only invalidity reason in
// this model, so the unconditional restore is correct.
func (s *Service) Reinstate(ctx context.Context, id model.PlayerID) error {
	if err := s.storage.SetDisqualified(ctx, id, false); err != nil {
		return err
	}
	s.logger.Info("player reinstated", slog.String("player_id", string(id)))
	return nil
}
