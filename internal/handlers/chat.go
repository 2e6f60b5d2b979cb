package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/invayl-academya/Ai-chatbot/internal/middleware"
	"github.com/invayl-academya/Ai-chatbot/internal/models"
	"github.com/invayl-academya/Ai-chatbot/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	user := middleware.GetUser(r.Context())
	resp, err := h.chatService.Exchange(r.Context(), user, req)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	opts := services.ListOptions{
		SessionID: parseStringParam(r, "session_id"),
		Role:      parseRoleParam(r),
		Owner:     r.URL.Query().Get("owner"),
		Limit:     parseIntParam(r, "limit", 100, 1, 500),
		Offset:    parseIntParam(r, "offset", 0, 0, 1<<31-1),
	}

	resp, err := h.chatService.ListMessages(r.Context(), user, opts)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) ListQA(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	opts := services.QAOptions{
		SessionID:  parseStringParam(r, "session_id"),
		Owner:      r.URL.Query().Get("owner"),
		PairLimit:  parseIntParam(r, "pair_limit", 50, 1, 500),
		PairOffset: parseIntParam(r, "pair_offset", 0, 0, 1<<31-1),
	}

	resp, err := h.chatService.ListQAPairs(r.Context(), user, opts)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	sessionID := parseStringParam(r, "session_id")
	owner := r.URL.Query().Get("owner")
	limit := parseIntParam(r, "limit", 100, 1, 500)

	resp, err := h.chatService.History(r.Context(), user, sessionID, owner, limit)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// Query parameter helpers

func parseStringParam(r *http.Request, name string) *string {
	val := r.URL.Query().Get(name)
	if val == "" {
		return nil
	}
	return &val
}

// parseRoleParam returns a role filter only for known roles; anything else
// is ignored rather than rejected.
func parseRoleParam(r *http.Request) *string {
	role := r.URL.Query().Get("role")
	if role == models.RoleUser || role == models.RoleAssistant {
		return &role
	}
	return nil
}

func parseIntParam(r *http.Request, name string, defaultVal, min, max int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < min || n > max {
		return defaultVal
	}
	return n
}
