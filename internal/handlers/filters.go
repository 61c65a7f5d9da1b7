package handlers

import (
	"net/http"

	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// GetFilters handles GET /api/v1/filters: the selectable values for the
// dashboard sidebar, dates newest-first and guilds alphabetical.
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshotOrRespond(w, r)
	if snap == nil {
		return
	}

	dates, guilds := logic.FilterValues(snap.Records)
	if dates == nil {
		dates = []string{}
	}
	if guilds == nil {
		guilds = []string{}
	}
	h.jsonResponse(w, http.StatusOK, models.FiltersResponse{
		Dates:  dates,
		Guilds: guilds,
	})
}
