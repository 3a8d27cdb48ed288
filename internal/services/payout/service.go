package payout

import (
	"context"

	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/services/report"
)

// DefaultAmount is the payout per approved screenshot, in in-game currency
const DefaultAmount int64 = 10000

// Line is one player's payout
type Line struct {
	Identity      model.PlayerID
	Nickname      string
	StaticID      string
	ApprovedCount int
	Amount        int64
}

// Summary is the full payout computation for the current event state
type Summary struct {
	Lines         []Line
	TotalApproved int
	TotalAmount   int64
}

// Service computes payouts from approved-submission statistics.
// Disqualified players are excluded upstream by the report service.
type Service struct {
	reports *report.Service
	amount  int64
}

// New creates a payout service paying amount per approved screenshot.
// A non-positive amount falls back to DefaultAmount.
func New(reports *report.Service, amount int64) *Service {
	if amount <= 0 {
		amount = DefaultAmount
	}
	return &Service{
		reports: reports,
		amount:  amount,
	}
}

// Amount returns the configured payout per approved screenshot
func (s *Service) Amount() int64 {
	return s.amount
}

// Compute calculates every eligible player's payout from current stats
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	stats, err := s.reports.ApprovedStats(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{}
	for _, stat := range stats {
		line := Line{
			Identity:      stat.Identity,
			Nickname:      stat.Nickname,
			StaticID:      stat.StaticID,
			ApprovedCount: stat.ApprovedCount,
			Amount:        int64(stat.ApprovedCount) * s.amount,
		}
		summary.Lines = append(summary.Lines, line)
		summary.TotalApproved += stat.ApprovedCount
		summary.TotalAmount += line.Amount
	}
	return summary, nil
}
