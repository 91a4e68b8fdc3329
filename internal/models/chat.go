package models

// Role values used by the site's chat widget.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryLimit bounds the rolling conversation context. The widget keeps the
// last 10 turns client-side; the server re-applies the same bound before
// relaying so an oversized payload never inflates the model context.
const HistoryLimit = 10

// ChatTurn is a single role-tagged message exchanged between a visitor and
// the assistant.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// ChatRequest is the payload of POST /api/gemini.
type ChatRequest struct {
	SystemPrompt string     `json:"systemPrompt"`
	History      []ChatTurn `json:"history"`
	UserMessage  string     `json:"userMessage"`
}

// ChatResponse carries the generated reply back to the widget.
type ChatResponse struct {
	Response string `json:"response"`
}

// TranscriptRequest is the payload of POST /api/send-chat-email.
type TranscriptRequest struct {
	ChatHistory []ChatTurn `json:"chatHistory"`
}

// TrimHistory returns the most recent HistoryLimit turns, dropping older
// entries from the front. Order is never changed.
func TrimHistory(turns []ChatTurn) []ChatTurn {
	if len(turns) <= HistoryLimit {
		return turns
	}
	return turns[len(turns)-HistoryLimit:]
}
