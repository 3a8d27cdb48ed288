package response

import (
	"time"

	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/services/event"
	"github.com/velmark/screenhunt/internal/services/payout"
)

// Player represents a player in API responses
type Player struct {
	Identity     string    `json:"identity"`
	StaticID     string    `json:"static_id"`
	Nickname     string    `json:"nickname"`
	RegisteredAt time.Time `json:"registered_at"`
	Disqualified bool      `json:"disqualified"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		Identity:     string(p.ID),
		StaticID:     p.StaticID,
		Nickname:     p.Nickname,
		RegisteredAt: p.RegisteredAt,
		Disqualified: p.Disqualified,
	}
}

// Submission represents a submission in API responses.
// Ordinal is the player-scoped sequence number and is only populated on
// single-submission reads.
type Submission struct {
	ID          int64     `json:"id"`
	Owner       string    `json:"owner"`
	ResourceURL string    `json:"resource_url"`
	SubmittedAt time.Time `json:"submitted_at"`
	Valid       bool      `json:"valid"`
	Approval    string    `json:"approval"`
	Ordinal     int       `json:"ordinal,omitempty"`
}

// SubmissionFromModel converts a model.Submission to a response Submission
func SubmissionFromModel(s *model.Submission) Submission {
	return Submission{
		ID:          int64(s.ID),
		Owner:       string(s.Owner),
		ResourceURL: s.ResourceURL,
		SubmittedAt: s.SubmittedAt,
		Valid:       s.Valid,
		Approval:    string(s.Approval),
	}
}

// SubmissionList wraps a player's submissions
type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
}

// SubmissionListFromModels converts submissions newest-first
func SubmissionListFromModels(subs []*model.Submission) SubmissionList {
	list := SubmissionList{Submissions: []Submission{}}
	for _, sub := range subs {
		list.Submissions = append(list.Submissions, SubmissionFromModel(sub))
	}
	return list
}

// PlayerCount is the response for the player count endpoint
type PlayerCount struct {
	PlayerCount int `json:"player_count"`
}

// LeaderboardEntry is one leaderboard row
type LeaderboardEntry struct {
	Identity   string `json:"identity"`
	Nickname   string `json:"nickname"`
	ValidCount int    `json:"valid_count"`
}

// Leaderboard wraps leaderboard rows
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModels converts leaderboard entries
func LeaderboardFromModels(entries []model.LeaderboardEntry) Leaderboard {
	board := Leaderboard{Entries: []LeaderboardEntry{}}
	for _, e := range entries {
		board.Entries = append(board.Entries, LeaderboardEntry{
			Identity:   string(e.Identity),
			Nickname:   e.Nickname,
			ValidCount: e.ValidCount,
		})
	}
	return board
}

// ApprovedStat is one payment-eligibility row
type ApprovedStat struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	StaticID      string `json:"static_id"`
	ApprovedCount int    `json:"approved_count"`
}

// ApprovedStats wraps payment-eligibility rows
type ApprovedStats struct {
	Stats []ApprovedStat `json:"stats"`
}

// ApprovedStatsFromModels converts approved stats
func ApprovedStatsFromModels(stats []model.ApprovedStat) ApprovedStats {
	resp := ApprovedStats{Stats: []ApprovedStat{}}
	for _, s := range stats {
		resp.Stats = append(resp.Stats, ApprovedStat{
			Identity:      string(s.Identity),
			Nickname:      s.Nickname,
			StaticID:      s.StaticID,
			ApprovedCount: s.ApprovedCount,
		})
	}
	return resp
}

// ApprovedLeaderboardEntry is one approval-ranked leaderboard row
type ApprovedLeaderboardEntry struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	TotalValid    int    `json:"total_valid"`
	ApprovedCount int    `json:"approved_count"`
}

// ApprovedLeaderboard wraps approval-ranked leaderboard rows
type ApprovedLeaderboard struct {
	Entries []ApprovedLeaderboardEntry `json:"entries"`
}

// ApprovedLeaderboardFromModels converts approval-ranked entries
func ApprovedLeaderboardFromModels(entries []model.ApprovedLeaderboardEntry) ApprovedLeaderboard {
	board := ApprovedLeaderboard{Entries: []ApprovedLeaderboardEntry{}}
	for _, e := range entries {
		board.Entries = append(board.Entries, ApprovedLeaderboardEntry{
			Identity:      string(e.Identity),
			Nickname:      e.Nickname,
			TotalValid:    e.TotalValid,
			ApprovedCount: e.ApprovedCount,
		})
	}
	return board
}

// EventStatus describes the configured event window
type EventStatus struct {
	Active bool       `json:"active"`
	Start  *time.Time `json:"start,omitempty"`
	End    *time.Time `json:"end,omitempty"`
}

// EventStatusFrom builds an EventStatus from the window and current activity
func EventStatusFrom(window event.Window, active bool) EventStatus {
	status := EventStatus{Active: active}
	if !window.Start.IsZero() {
		start := window.Start
		status.Start = &start
	}
	if !window.End.IsZero() {
		end := window.End
		status.End = &end
	}
	return status
}

// PayoutLine is one player's payout
type PayoutLine struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	StaticID      string `json:"static_id"`
	ApprovedCount int    `json:"approved_count"`
	Amount        int64  `json:"amount"`
}

// PayoutSummary is the full payout computation
type PayoutSummary struct {
	Lines         []PayoutLine `json:"lines"`
	TotalApproved int          `json:"total_approved"`
	TotalAmount   int64        `json:"total_amount"`
	AmountPerItem int64        `json:"amount_per_item"`
}

// PayoutSummaryFromModel converts a payout summary
func PayoutSummaryFromModel(summary *payout.Summary, amountPerItem int64) PayoutSummary {
	resp := PayoutSummary{
		Lines:         []PayoutLine{},
		TotalApproved: summary.TotalApproved,
		TotalAmount:   summary.TotalAmount,
		AmountPerItem: amountPerItem,
	}
	for _, line := range summary.Lines {
		resp.Lines = append(resp.Lines, PayoutLine{
			Identity:      string(line.Identity),
			Nickname:      line.Nickname,
			StaticID:      line.StaticID,
			ApprovedCount: line.ApprovedCount,
			Amount:        line.Amount,
		})
	}
	return resp
}
