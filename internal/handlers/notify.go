package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// NotifyHandler turns chat transcripts and contact submissions into email
// notifications for the site owner.
type NotifyHandler struct {
	mail mailer
}

func NewNotifyHandler(mail mailer) *NotifyHandler {
	return &NotifyHandler{mail: mail}
}

func (h *NotifyHandler) SendChatTranscript(w http.ResponseWriter, r *http.Request) {
	var req models.TranscriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Поле chatHistory должно быть массивом сообщений", r))
		return
	}

	if len(req.ChatHistory) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Поле chatHistory обязательно", r))
		return
	}

	body := services.RenderTranscript(req.ChatHistory)
	if err := h.mail.Send(r.Context(), services.TranscriptSubject, body); err != nil {
		handleServiceError(w, r, err, "Не удалось отправить сообщение")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *NotifyHandler) SendContactForm(w http.ResponseWriter, r *http.Request) {
	var sub models.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Некорректное тело запроса", r))
		return
	}

	if err := services.ValidateContact(sub); err != nil {
		handleServiceError(w, r, err, "Не удалось отправить сообщение")
		return
	}

	subject := services.ContactSubject(sub)
	body := services.RenderContact(sub)

	if err := h.mail.Send(r.Context(), subject, body); err != nil {
		handleServiceError(w, r, err, "Не удалось отправить сообщение")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Заявка отправлена"})
}
