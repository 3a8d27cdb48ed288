package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/velmark/screenhunt/internal/api/handler"
	apimiddleware "github.com/velmark/screenhunt/internal/api/middleware"
	"github.com/velmark/screenhunt/internal/middleware"
	"github.com/velmark/screenhunt/internal/services/event"
	"github.com/velmark/screenhunt/internal/services/ledger"
	"github.com/velmark/screenhunt/internal/services/payout"
	"github.com/velmark/screenhunt/internal/services/registry"
	"github.com/velmark/screenhunt/internal/services/report"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Registry   *registry.Service
	Ledger     *ledger.Service
	Report     *report.Service
	Event      *event.Service
	Payout     *payout.Service
	AdminToken string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Registry, cfg.Ledger)
	submissionHandler := handler.NewSubmissionHandler(cfg.Ledger, cfg.Registry, cfg.Event)
	statsHandler := handler.NewStatsHandler(cfg.Report, cfg.Payout, cfg.Event)
	adminHandler := handler.NewAdminHandler(cfg.Event)

	// Create middleware
	adminAuth := apimiddleware.AdminAuth(cfg.AdminToken)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Registration and reads are open; the chat front-end mediates access
	api.HandleFunc("/players", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}/submissions", playerHandler.Submissions).Methods(http.MethodGet)

	api.HandleFunc("/submissions", submissionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/submissions/{id}", submissionHandler.Get).Methods(http.MethodGet)

	api.HandleFunc("/stats/players", statsHandler.Players).Methods(http.MethodGet)
	api.HandleFunc("/stats/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/stats/approved", statsHandler.Approved).Methods(http.MethodGet)
	api.HandleFunc("/stats/leaderboard-by-approved", statsHandler.LeaderboardByApproved).Methods(http.MethodGet)
	api.HandleFunc("/event", statsHandler.Event).Methods(http.MethodGet)

	// Moderation and destructive routes require the admin token
	moderation := api.NewRoute().Subrouter()
	moderation.Use(adminAuth)
	moderation.HandleFunc("/players/{id}/disqualify", playerHandler.Disqualify).Methods(http.MethodPost)
	moderation.HandleFunc("/players/{id}/reinstate", playerHandler.Reinstate).Methods(http.MethodPost)
	moderation.HandleFunc("/submissions/{id}/approve", submissionHandler.Approve).Methods(http.MethodPost)
	moderation.HandleFunc("/submissions/{id}/reject", submissionHandler.Reject).Methods(http.MethodPost)
	moderation.HandleFunc("/stats/payouts", statsHandler.Payouts).Methods(http.MethodGet)
	moderation.HandleFunc("/admin/reset", adminHandler.Reset).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
