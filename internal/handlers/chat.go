package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/kongssang/guildwar-stats-api/internal/logic"
	"github.com/kongssang/guildwar-stats-api/internal/models"
)

// chatSystemPrompt frames the assistant; the live stats summary is appended
// per request.
const chatSystemPrompt = "당신은 길드전 공격 조합 추천 도우미입니다. " +
	"아래 통계를 근거로 간결하게 한국어로 답하세요. 통계에 없는 조합은 모른다고 답하세요.\n\n"

// chatSummaryGroups bounds how many defense groups go into the prompt.
const chatSummaryGroups = 30

// PostChat handles POST /api/v1/chat. The current aggregation is rendered
// into the prompt and one completion is relayed. Upstream failures become
// an inline error payload; they never affect the aggregation path and never
// surface as a transport error to the dashboard.
func (h *Handler) PostChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "question is required (max 2000 characters)")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	if h.chat == nil || !h.chat.Enabled() {
		h.jsonResponse(w, http.StatusOK, models.ChatResponse{
			Error:     "채팅 도우미가 설정되어 있지 않습니다.",
			SessionID: sessionID,
		})
		return
	}

	// A missing or unreadable answer book degrades to the empty-data
	// summary; the assistant still answers, it just has nothing to cite.
	var summary string
	if snap, err := h.store.Snapshot(r.Context()); err != nil {
		summary = logic.Summarize(nil, 0)
	} else {
		summary = logic.Summarize(logic.Recommend(snap.Records), chatSummaryGroups)
	}

	answer, err := h.chat.Complete(r.Context(), chatSystemPrompt+summary, req.Question)
	if err != nil {
		h.logger.Warnw("Chat completion failed", "error", err, "session", sessionID)
		h.jsonResponse(w, http.StatusOK, models.ChatResponse{
			Error:     "답변 생성에 실패했습니다. 잠시 후 다시 시도해주세요.",
			SessionID: sessionID,
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, models.ChatResponse{
		Answer:    answer,
		SessionID: sessionID,
	})
}
