package handler

import (
	"net/http"

	"github.com/velmark/screenhunt/internal/api/response"
	"github.com/velmark/screenhunt/internal/services/event"
)

// AdminHandler handles destructive administrative endpoints
type AdminHandler struct {
	event *event.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(event *event.Service) *AdminHandler {
	return &AdminHandler{
		event: event,
	}
}

// Reset handles POST /api/v1/admin/reset.
// Clears every player and submission with no archival.
func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.event.Reset(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
