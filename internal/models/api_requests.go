package models

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Question  string `json:"question" validate:"required,min=1,max=2000"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse carries either an answer or an inline error message. A failed
// upstream call never becomes a transport-level error for the dashboard.
type ChatResponse struct {
	Answer    string `json:"answer,omitempty"`
	Error     string `json:"error,omitempty"`
	SessionID string `json:"session_id"`
}

// RecommendationsResponse is the payload of GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Groups  []DefenseGroup `json:"groups"`
	Total   int            `json:"total_records"`
	Matched int            `json:"matched_records"`
	// Notice is set for the no-data-file state, which is an empty dataset
	// with an actionable message rather than an error.
	Notice string `json:"notice,omitempty"`
}

// FiltersResponse lists the selectable filter values for the dashboard
// sidebar: dates newest-first, opposing guilds alphabetical.
type FiltersResponse struct {
	Dates  []string `json:"dates"`
	Guilds []string `json:"guilds"`
}

// GuideResponse wraps a guide lookup. A miss is a normal outcome, reported
// with Found=false rather than a 404.
type GuideResponse struct {
	Found bool        `json:"found"`
	Guide *GuideEntry `json:"guide,omitempty"`
}
