package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/kongssang/guildwar-stats-api/internal/dataset"
	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. The service is degraded but still serving when the
// answer book is absent, so readiness reports the dataset state rather than
// failing on it.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ready := true
	data := map[string]interface{}{}

	snap, err := h.store.Snapshot(ctx)
	switch {
	case errors.Is(err, dataset.ErrNoDataFile):
		data["dataset"] = "missing"
	case err != nil:
		data["dataset"] = "unreadable"
		ready = false
	default:
		data["dataset"] = "ok"
		data["source"] = snap.Source
		data["stats"] = snap.Stats
		data["loaded_at"] = snap.LoadedAt
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			data["redis"] = "down"
		} else {
			data["redis"] = "ok"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	data["ready"] = ready
	json.NewEncoder(w).Encode(data)
}

// parseFilters builds the filter state for one render pass from query
// parameters: search (free text), dates and guilds (comma-separated multi
// selects).
func parseFilters(query url.Values) logic.Filters {
	return logic.Filters{
		Search: logic.ParseQuery(query.Get("search")),
		Dates:  splitParam(query.Get("dates")),
		Guilds: splitParam(query.Get("guilds")),
	}
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// snapshotOrRespond fetches the current dataset. A missing data file is an
// empty-dataset state: the response is written here (with an actionable
// notice) and nil is returned. Read/parse failures surface as a 500 with
// the underlying cause.
func (h *Handler) snapshotOrRespond(w http.ResponseWriter, r *http.Request) *dataset.Snapshot {
	snap, err := h.store.Snapshot(r.Context())
	if errors.Is(err, dataset.ErrNoDataFile) {
		h.jsonResponse(w, http.StatusOK, models.RecommendationsResponse{
			Groups: []models.DefenseGroup{},
			Notice: "데이터 파일을 찾을 수 없습니다. (길드전 답지.xlsx 또는 .csv)",
		})
		return nil
	}
	if err != nil {
		h.logger.Errorw("Failed to load dataset", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to load dataset: "+err.Error())
		return nil
	}
	return snap
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}
