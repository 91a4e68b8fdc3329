package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-backend/internal/models"
)

type generator interface {
	Chat(ctx context.Context, systemPrompt string, history []models.ChatTurn, userMessage string) (string, error)
}

// ChatHandler relays one chat turn from the site's assistant widget to the
// generative backend.
type ChatHandler struct {
	ai generator
}

func NewChatHandler(ai generator) *ChatHandler {
	return &ChatHandler{ai: ai}
}

func (h *ChatHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Некорректное тело запроса", r))
		return
	}

	if strings.TrimSpace(req.UserMessage) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Сообщение не может быть пустым", r))
		return
	}

	reply, err := h.ai.Chat(r.Context(), req.SystemPrompt, req.History, req.UserMessage)
	if err != nil {
		handleServiceError(w, r, err, "Не удалось получить ответ от ассистента")
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Response: reply})
}
