package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// GetRecommendations handles GET /api/v1/recommendations.
// Query params: search (free-text hero terms), dates, guilds (comma
// separated). Returns defense groups ranked by popularity, each with the
// recommended attack composition and the full per-attack breakdown.
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	snap := h.snapshotOrRespond(w, r)
	if snap == nil {
		return
	}

	// Keyed on filter state and load cycle, so a reloaded sheet never
	// serves stale aggregates.
	cacheKey := recommendationsCacheKey(r.URL.RawQuery, snap.LoadedAt.UnixNano())
	if cached := h.cacheGet(r, cacheKey); cached != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	filtered := parseFilters(r.URL.Query()).Apply(snap.Records)
	resp := models.RecommendationsResponse{
		Groups:  logic.Recommend(filtered),
		Total:   len(snap.Records),
		Matched: len(filtered),
	}

	h.cacheSet(r, cacheKey, resp)
	h.jsonResponse(w, http.StatusOK, resp)
}

func recommendationsCacheKey(rawQuery string, loadCycle int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%s", loadCycle, rawQuery)))
	return "recommendations:" + hex.EncodeToString(sum[:8])
}

// cacheGet returns a cached response body, or nil on miss, cache disabled,
// or redis trouble. The cache is a cut-through: failures fall back to
// recomputation, never to an error.
func (h *Handler) cacheGet(r *http.Request, key string) []byte {
	if h.redis == nil {
		return nil
	}
	data, err := h.redis.Get(r.Context(), key).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (h *Handler) cacheSet(r *http.Request, key string, resp interface{}) {
	if h.redis == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	ttl := h.cacheTTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	if err := h.redis.Set(r.Context(), key, data, ttl).Err(); err != nil {
		h.logger.Warnw("Failed to cache response", "key", key, "error", err)
	}
}
