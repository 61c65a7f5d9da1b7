package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// GetGroupAttacks handles GET /api/v1/groups/{defense}/attacks.
// The path segment is the URL-escaped defense composition in any ordering
// or spacing; it is normalized before lookup. Every observed attack
// composition for the group is returned with its own count, share and
// modal setting stats.
func (h *Handler) GetGroupAttacks(w http.ResponseWriter, r *http.Request) {
	defense, ok := h.identityParam(w, r, "defense")
	if !ok {
		return
	}

	snap := h.snapshotOrRespond(w, r)
	if snap == nil {
		return
	}

	filtered := parseFilters(r.URL.Query()).Apply(snap.Records)
	groups := logic.Recommend(filtered)
	for _, g := range groups {
		if g.DefenseID == defense {
			h.jsonResponse(w, http.StatusOK, g)
			return
		}
	}

	// Unknown defense composition: an empty group, not an error.
	h.jsonResponse(w, http.StatusOK, models.DefenseGroup{
		DefenseID:     defense,
		DefenseHeroes: logic.Tokens(defense),
		Attacks:       []models.AttackBreakdown{},
	})
}

// GetSetups handles GET /api/v1/groups/{defense}/attacks/{attack}/setups.
// Returns the exact-configuration frequency table for one pair, most
// frequent first.
func (h *Handler) GetSetups(w http.ResponseWriter, r *http.Request) {
	defense, ok := h.identityParam(w, r, "defense")
	if !ok {
		return
	}
	attack, ok := h.identityParam(w, r, "attack")
	if !ok {
		return
	}

	snap := h.snapshotOrRespond(w, r)
	if snap == nil {
		return
	}

	filtered := parseFilters(r.URL.Query()).Apply(snap.Records)
	pair := logic.FilterPair(filtered, defense, attack)

	setups := logic.SetupTable(pair)
	if setups == nil {
		setups = []models.SetupRow{}
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"defense_id": defense,
		"attack_id":  attack,
		"count":      len(pair),
		"setups":     setups,
	})
}

// identityParam extracts and normalizes a composition path parameter.
func (h *Handler) identityParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	raw := chi.URLParam(r, name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	identity := logic.Normalize(raw)
	if identity == "" {
		h.errorResponse(w, http.StatusBadRequest, name+" composition required")
		return "", false
	}
	return identity, true
}
