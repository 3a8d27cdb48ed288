package storage

import (
	"context"

	"github.com/velmark/screenhunt/internal/model"
)

// Storage defines the interface for data persistence.
//
// Every write method executes as a single atomic operation: it is either
// fully applied or not applied at all, including the disqualification
// cascade in SetDisqualified and the truncation in Reset.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	// SetDisqualified flips the player's disqualification flag and, in the
	// same atomic operation, rewrites Valid on every submission the player
	// owns (Valid = !disqualified).
	SetDisqualified(ctx context.Context, id model.PlayerID, disqualified bool) error
	PlayerCount(ctx context.Context) (int, error)

	// Submission operations
	CreateSubmission(ctx context.Context, sub *model.Submission) error
	GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error)
	SubmissionsByOwner(ctx context.Context, owner model.PlayerID) ([]*model.Submission, error)
	// SubmissionOrdinal returns the 1-based position of the submission among
	// all of the owner's submissions ordered by submission time. Returns 1
	// when the target submission does not exist.
	SubmissionOrdinal(ctx context.Context, owner model.PlayerID, id model.SubmissionID) (int, error)
	SetApproval(ctx context.Context, id model.SubmissionID, approval model.Approval) error

	// Reporting operations
	Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	ApprovedStats(ctx context.Context) ([]model.ApprovedStat, error)
	LeaderboardByApproved(ctx context.Context) ([]model.ApprovedLeaderboardEntry, error)

	// Reset deletes all players and submissions. Destructive, no archival.
	Reset(ctx context.Context) error
}
