package handlers

import (
	"net/http"

	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// GetGuide handles GET /api/v1/guides?defense=...&attack=...
// Most compositions have no authored guide; a miss is reported with
// found=false, never a 404.
func (h *Handler) GetGuide(w http.ResponseWriter, r *http.Request) {
	defense := r.URL.Query().Get("defense")
	attack := r.URL.Query().Get("attack")
	if defense == "" || attack == "" {
		h.errorResponse(w, http.StatusBadRequest, "defense and attack query parameters required")
		return
	}

	entry, found := h.guides.Lookup(defense, attack)
	resp := models.GuideResponse{Found: found}
	if found {
		resp.Guide = &entry
	}
	h.jsonResponse(w, http.StatusOK, resp)
}
