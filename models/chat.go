package models

import "time"

// ChatRequest is one user message sent to the assistant.
type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"sessionId"`
}

// ChatResponse carries the raw model completion back to the caller.
type ChatResponse struct {
	Answer    string `json:"answer"`
	SessionID string `json:"sessionId"`
}

// ChatMessage is one transcript entry. Transcripts are display-only;
// they are never fed back into the model prompt.
type ChatMessage struct {
	Role string    `json:"role"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
