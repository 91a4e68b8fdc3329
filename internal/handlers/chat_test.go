package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type stubGenerator struct {
	calls           int
	gotSystemPrompt string
	gotHistory      []models.ChatTurn
	gotMessage      string
	reply           string
	err             error
}

func (s *stubGenerator) Chat(_ context.Context, systemPrompt string, history []models.ChatTurn, userMessage string) (string, error) {
	s.calls++
	s.gotSystemPrompt = systemPrompt
	s.gotHistory = history
	s.gotMessage = userMessage
	return s.reply, s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestGenerateSuccess(t *testing.T) {
	stub := &stubGenerator{reply: "Здравствуйте! Чем могу помочь?"}
	h := NewChatHandler(stub)

	body := `{
		"systemPrompt": "Ты ассистент студии.",
		"history": [
			{"role": "user", "text": "привет"},
			{"role": "assistant", "text": "здравствуйте"}
		],
		"userMessage": "сколько стоит сайт?"
	}`

	rr := postJSON(t, h.Generate, body)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp models.ChatResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Response != stub.reply {
		t.Errorf("expected reply %q, got %q", stub.reply, resp.Response)
	}

	if stub.calls != 1 {
		t.Fatalf("expected exactly one generation call, got %d", stub.calls)
	}
	if stub.gotSystemPrompt != "Ты ассистент студии." {
		t.Errorf("system prompt not forwarded: %q", stub.gotSystemPrompt)
	}
	if stub.gotMessage != "сколько стоит сайт?" {
		t.Errorf("user message not forwarded: %q", stub.gotMessage)
	}
	if len(stub.gotHistory) != 2 || stub.gotHistory[0].Text != "привет" || stub.gotHistory[1].Text != "здравствуйте" {
		t.Errorf("history order not preserved: %+v", stub.gotHistory)
	}
}

func TestGenerateEmptyUserMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty string", `{"userMessage": ""}`},
		{"missing field", `{"history": []}`},
		{"whitespace only", `{"userMessage": "   "}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubGenerator{}
			h := NewChatHandler(stub)

			rr := postJSON(t, h.Generate, tc.body)
			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
			if stub.calls != 0 {
				t.Fatalf("expected no generation call, got %d", stub.calls)
			}
		})
	}
}

func TestGenerateInvalidBody(t *testing.T) {
	stub := &stubGenerator{}
	h := NewChatHandler(stub)

	rr := postJSON(t, h.Generate, `{"history": "not-an-array", "userMessage": "hi"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no generation call, got %d", stub.calls)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	stub := &stubGenerator{err: &services.UpstreamError{
		Op:  "gemini",
		Err: errors.New("quota exceeded: project 12345 suspended"),
	}}
	h := NewChatHandler(stub)

	rr := postJSON(t, h.Generate, `{"userMessage": "привет"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "Не удалось получить ответ от ассистента") {
		t.Errorf("expected generic message, got: %s", body)
	}
	if strings.Contains(body, "quota exceeded") || strings.Contains(body, "12345") {
		t.Errorf("upstream error detail leaked into response: %s", body)
	}
}

func TestGenerateTimeout(t *testing.T) {
	stub := &stubGenerator{err: &services.TimeoutError{Op: "gemini"}}
	h := NewChatHandler(stub)

	rr := postJSON(t, h.Generate, `{"userMessage": "привет"}`)
	if rr.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Не удалось получить ответ от ассистента") {
		t.Errorf("expected generic message, got: %s", rr.Body.String())
	}
}
