package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"portfolio-backend/internal/models"
)

// GeminiService relays a single chat turn to the Gemini API. It keeps no
// per-conversation state; the full (bounded) history arrives with every call.
type GeminiService struct {
	client          *genai.Client
	modelName       string
	maxOutputTokens int32
	timeout         time.Duration
}

func NewGeminiService(ctx context.Context, apiKey, modelName string, maxOutputTokens int32, timeout time.Duration) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiService{
		client:          client,
		modelName:       modelName,
		maxOutputTokens: maxOutputTokens,
		timeout:         timeout,
	}, nil
}

func (s *GeminiService) Close() {
	s.client.Close()
}

// Chat seeds a model session with the system prompt and the caller's history,
// sends userMessage as the newest user turn and returns the generated text.
// Exactly one generation call is made; failures are never retried here.
func (s *GeminiService) Chat(ctx context.Context, systemPrompt string, history []models.ChatTurn, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// A fresh model handle per request: SystemInstruction is request-scoped
	// and must not leak between concurrent chats.
	model := s.client.GenerativeModel(s.modelName)
	model.SetMaxOutputTokens(s.maxOutputTokens)
	if systemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(systemPrompt)},
		}
	}

	cs := model.StartChat()
	cs.History = toModelHistory(models.TrimHistory(history))

	resp, err := cs.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", &TimeoutError{Op: "gemini"}
		}
		return "", &UpstreamError{Op: "gemini", Err: err}
	}

	text := strings.TrimSpace(extractText(resp))
	if text == "" {
		return "", &UpstreamError{Op: "gemini", Err: errors.New("empty response from model")}
	}

	return text, nil
}

// toModelHistory translates widget turns into the Gemini wire format. The
// local "assistant" role maps to the API's "model" token; everything else is
// relayed as "user". Order is preserved as given.
func toModelHistory(turns []models.ChatTurn) []*genai.Content {
	history := make([]*genai.Content, 0, len(turns))
	for _, turn := range turns {
		role := "user"
		if turn.Role == models.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return history
}

func extractText(resp *genai.GenerateContentResponse) string {
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if t, ok := part.(genai.Text); ok {
					text.WriteString(string(t))
				}
			}
		}
	}
	return text.String()
}
