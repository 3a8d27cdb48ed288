package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/velmark/screenhunt/internal/api/request"
	"github.com/velmark/screenhunt/internal/api/response"
	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/services/ledger"
	"github.com/velmark/screenhunt/internal/services/registry"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	registry *registry.Service
	ledger   *ledger.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(registry *registry.Service, ledger *ledger.Service) *PlayerHandler {
	return &PlayerHandler{
		registry: registry,
		ledger:   ledger,
	}
}

// Register handles POST /api/v1/players
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Identity == "" {
		WriteError(w, NewInvalidRequestError("identity is required"))
		return
	}
	if strings.TrimSpace(req.StaticID) == "" {
		WriteError(w, NewInvalidRequestError("static_id is required"))
		return
	}
	if strings.TrimSpace(req.Nickname) == "" {
		WriteError(w, NewInvalidRequestError("nickname is required"))
		return
	}

	player, err := h.registry.Register(r.Context(), model.PlayerID(req.Identity), req.StaticID, req.Nickname)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.registry.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Submissions handles GET /api/v1/players/{id}/submissions
func (h *PlayerHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	subs, err := h.ledger.ListForOwner(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmissionListFromModels(subs))
}

// Disqualify handles POST /api/v1/players/{id}/disqualify
func (h *PlayerHandler) Disqualify(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.registry.Disqualify(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reinstate handles POST /api/v1/players/{id}/reinstate
func (h *PlayerHandler) Reinstate(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.registry.Reinstate(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
