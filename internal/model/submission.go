package model

import "time"

// SubmissionID uniquely identifies a submission (auto-incremented by storage)
type SubmissionID int64

// Approval is the moderation verdict on a submission.
// Every submission starts pending; moderators may flip a decision in either
// direction, but nothing transitions back to pending.
type Approval string

// Approval states
const (
	ApprovalPending  Approval = "pending"
	ApprovalApproved Approval = "approved"
	ApprovalRejected Approval = "rejected"
)

// IsValid reports whether a is one of the three known approval states
func (a Approval) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// Submission is one piece of screenshot evidence tied to a player.
// Immutable once created except for Valid (disqualification cascade)
// and Approval (moderation).
type Submission struct {
	ID          SubmissionID
	Owner       PlayerID
	ResourceURL string
	SubmittedAt time.Time // UTC
	// Valid mirrors the owner's standing: false while the owner is
	// disqualified, true otherwise. It is bulk-rewritten whenever the
	// owner's disqualification flag flips, not set once at creation.
	Valid    bool
	Approval Approval
}
