package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
)

type panickingGenerator struct{}

func (panickingGenerator) Chat(context.Context, string, []models.ChatTurn, string) (string, error) {
	panic("model client state corrupted")
}

type recordingMailer struct {
	calls int
}

func (m *recordingMailer) Send(context.Context, string, string) error {
	m.calls++
	return nil
}

func newTestRouter() http.Handler {
	return New(
		handlers.NewChatHandler(panickingGenerator{}),
		handlers.NewNotifyHandler(&recordingMailer{}),
	)
}

func serve(r http.Handler, method, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestPanicYieldsJSONError(t *testing.T) {
	r := newTestRouter()

	rr := serve(r, http.MethodPost, "/api/gemini", "application/json", `{"userMessage": "привет"}`)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}

	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected INTERNAL_ERROR code, got %q", resp.Error.Code)
	}
	if strings.Contains(resp.Error.Message, "corrupted") {
		t.Errorf("panic detail leaked into response: %q", resp.Error.Message)
	}
}

func TestNonJSONContentTypeRejected(t *testing.T) {
	r := newTestRouter()

	for _, path := range []string{"/api/gemini", "/api/send-chat-email", "/api/send-contact-form"} {
		rr := serve(r, http.MethodPost, path, "text/plain", "hello")
		if rr.Code != http.StatusUnsupportedMediaType {
			t.Errorf("%s: expected 415, got %d", path, rr.Code)
		}
	}
}

func TestCORSOpenToAnyOrigin(t *testing.T) {
	r := newTestRouter()

	rr := serve(r, http.MethodOptions, "/api/gemini", "", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", rr.Code)
	}
	if origin := rr.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected open CORS, got %q", origin)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter()

	rr := serve(r, http.MethodGet, "/health", "", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Errorf("unexpected health body: %s", rr.Body.String())
	}
}
