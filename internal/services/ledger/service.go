package ledger

import (
	"context"
	"log/slog"

	"github.com/velmark/screenhunt/internal/dependencies/clock"
	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage"
)

// Service records screenshot submissions and their moderation state
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new ledger service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit records a new submission for owner. The submission starts valid
// and pending. Whether the owner exists, is disqualified, or is inside the
// event window is the caller's responsibility to check first; no
// de-duplication by URL is performed here.
func (s *Service) Submit(ctx context.Context, owner model.PlayerID, resourceURL string) (*model.Submission, error) {
	sub := &model.Submission{
		Owner:       owner,
		ResourceURL: resourceURL,
		SubmittedAt: s.clock.Now().UTC(),
		Valid:       true,
		Approval:    model.ApprovalPending,
	}

	if err := s.storage.CreateSubmission(ctx, sub); err != nil {
		return nil, err
	}

	s.logger.Info("submission recorded",
		slog.Int64("submission_id", int64(sub.ID)),
		slog.String("player_id", string(owner)),
	)
	return sub, nil
}

// ListForOwner returns all of the owner's submissions, newest first.
// Recomputed fresh on every call.
func (s *Service) ListForOwner(ctx context.Context, owner model.PlayerID) ([]*model.Submission, error) {
	return s.storage.SubmissionsByOwner(ctx, owner)
}

// Get returns a submission by ID, or model.ErrSubmissionNotFound
func (s *Service) Get(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	return s.storage.GetSubmission(ctx, id)
}

// Ordinal returns the 1-based position of the submission among all of the
// owner's submissions ordered by submission time ("the player's Nth
// screenshot"), independent of validity or approval state. A missing target
// degenerates to 1; callers that care should verify the submission exists.
func (s *Service) Ordinal(ctx context.Context, owner model.PlayerID, id model.SubmissionID) (int, error) {
	return s.storage.SubmissionOrdinal(ctx, owner, id)
}

// Approve marks the submission approved. Re-approving is permitted and
// reports success; only a missing submission fails.
func (s *Service) Approve(ctx context.Context, id model.SubmissionID) error {
	return s.setApproval(ctx, id, model.ApprovalApproved)
}

// Reject marks the submission rejected. A previously approved submission
// may be rejected; decisions are reversible in both directions.
func (s *Service) Reject(ctx context.Context, id model.SubmissionID) error {
	return s.setApproval(ctx, id, model.ApprovalRejected)
}

func (s *Service) setApproval(ctx context.Context, id model.SubmissionID, approval model.Approval) error {
	if err := s.storage.SetApproval(ctx, id, approval); err != nil {
		return err
	}
	s.logger.Info("submission moderated",
		slog.Int64("submission_id", int64(id)),
		slog.String("approval", string(approval)),
	)
	return nil
}
