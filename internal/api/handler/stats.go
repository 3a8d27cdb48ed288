package handler

import (
	"net/http"

	"github.com/velmark/screenhunt/internal/api/response"
	"github.com/velmark/screenhunt/internal/services/event"
	"github.com/velmark/screenhunt/internal/services/payout"
	"github.com/velmark/screenhunt/internal/services/report"
)

// StatsHandler handles reporting endpoints
type StatsHandler struct {
	report *report.Service
	payout *payout.Service
	event  *event.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(report *report.Service, payout *payout.Service, event *event.Service) *StatsHandler {
	return &StatsHandler{
		report: report,
		payout: payout,
		event:  event,
	}
}

// Players handles GET /api/v1/stats/players
func (h *StatsHandler) Players(w http.ResponseWriter, r *http.Request) {
	count, err := h.report.PlayerCount(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerCount{PlayerCount: count})
}

// Leaderboard handles GET /api/v1/stats/leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.report.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModels(entries))
}

// Approved handles GET /api/v1/stats/approved
func (h *StatsHandler) Approved(w http.ResponseWriter, r *http.Request) {
	stats, err := h.report.ApprovedStats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ApprovedStatsFromModels(stats))
}

// LeaderboardByApproved handles GET /api/v1/stats/leaderboard-by-approved
func (h *StatsHandler) LeaderboardByApproved(w http.ResponseWriter, r *http.Request) {
	entries, err := h.report.LeaderboardByApproved(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ApprovedLeaderboardFromModels(entries))
}

// Payouts handles GET /api/v1/stats/payouts
func (h *StatsHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payout.Compute(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PayoutSummaryFromModel(summary, h.payout.Amount()))
}

// Event handles GET /api/v1/event
func (h *StatsHandler) Event(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.EventStatusFrom(h.event.Window(), h.event.Active()))
}
