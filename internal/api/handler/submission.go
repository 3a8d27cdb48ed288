package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/velmark/screenhunt/internal/api/request"
	"github.com/velmark/screenhunt/internal/api/response"
	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/services/event"
	"github.com/velmark/screenhunt/internal/services/ledger"
	"github.com/velmark/screenhunt/internal/services/registry"
)

// SubmissionHandler handles submission-related endpoints
type SubmissionHandler struct {
	ledger   *ledger.Service
	registry *registry.Service
	event    *event.Service
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(ledger *ledger.Service, registry *registry.Service, event *event.Service) *SubmissionHandler {
	return &SubmissionHandler{
		ledger:   ledger,
		registry: registry,
		event:    event,
	}
}

// Create handles POST /api/v1/submissions.
// The ledger itself accepts anything; intake checks live here instead. The
// event must be active and the owner must be a registered,
// non-disqualified player.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Owner == "" {
		WriteError(w, NewInvalidRequestError("owner is required"))
		return
	}
	if strings.TrimSpace(req.ResourceURL) == "" {
		WriteError(w, NewInvalidRequestError("resource_url is required"))
		return
	}

	if !h.event.Active() {
		WriteError(w, NewEventClosedError())
		return
	}

	owner := model.PlayerID(req.Owner)
	player, err := h.registry.Get(r.Context(), owner)
	if err != nil {
		WriteError(w, err)
		return
	}
	if player.Disqualified {
		WriteError(w, NewPlayerDisqualifiedError())
		return
	}

	sub, err := h.ledger.Submit(r.Context(), owner, req.ResourceURL)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SubmissionFromModel(sub)
	if ordinal, err := h.ledger.Ordinal(r.Context(), owner, sub.ID); err == nil {
		resp.Ordinal = ordinal
	}
	response.JSON(w, http.StatusCreated, resp)
}

// Get handles GET /api/v1/submissions/{id}
func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionID(w, r)
	if !ok {
		return
	}

	sub, err := h.ledger.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.SubmissionFromModel(sub)
	if ordinal, err := h.ledger.Ordinal(r.Context(), sub.Owner, sub.ID); err == nil {
		resp.Ordinal = ordinal
	}
	response.JSON(w, http.StatusOK, resp)
}

// Approve handles POST /api/v1/submissions/{id}/approve
func (h *SubmissionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionID(w, r)
	if !ok {
		return
	}

	if err := h.ledger.Approve(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reject handles POST /api/v1/submissions/{id}/reject
func (h *SubmissionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := submissionID(w, r)
	if !ok {
		return
	}

	if err := h.ledger.Reject(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

func submissionID(w http.ResponseWriter, r *http.Request) (model.SubmissionID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, NewInvalidRequestError("submission id must be an integer"))
		return 0, false
	}
	return model.SubmissionID(id), true
}
