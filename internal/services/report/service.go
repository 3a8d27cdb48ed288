package report

import (
	"context"
	"log/slog"

	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage"
)

// Service computes leaderboard and payment-eligibility statistics.
// Pure reads, recomputed from current store state on every call.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new report service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// PlayerCount returns the total number of registered players,
// disqualified or not
func (s *Service) PlayerCount(ctx context.Context) (int, error) {
	return s.storage.PlayerCount(ctx)
}

// Leaderboard ranks non-disqualified players by valid submission count,
// descending. Ties break on identity ascending.
func (s *Service) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	return s.storage.Leaderboard(ctx)
}

// ApprovedStats lists non-disqualified players with at least one valid,
// approved submission, ranked by approved count descending
func (s *Service) ApprovedStats(ctx context.Context) ([]model.ApprovedStat, error) {
	return s.storage.ApprovedStats(ctx)
}

// LeaderboardByApproved ranks non-disqualified players with at least one
// valid submission by approved count, then by total valid count
func (s *Service) LeaderboardByApproved(ctx context.Context) ([]model.ApprovedLeaderboardEntry, error) {
	return s.storage.LeaderboardByApproved(ctx)
}
