package assistant

import (
	"context"
	"encoding/json"
	"time"

	"turnera/config"
	"turnera/models"
	"turnera/services/calendar"
	"turnera/services/payments"
)

// InferenceClient generates a text completion for a prompt.
type InferenceClient interface {
	Generate(ctx context.Context, prompt string, maxNewTokens int, temperature float64) (string, error)
}

// CalendarClient is the scheduling upstream.
type CalendarClient interface {
	GetSlots(ctx context.Context, q calendar.SlotQuery) (json.RawMessage, error)
	CreateBooking(ctx context.Context, payload calendar.BookingPayload) (json.RawMessage, error)
}

// PaymentsClient is the payment upstream.
type PaymentsClient interface {
	CreatePreference(ctx context.Context, pref payments.Preference) (*payments.PreferenceResult, error)
}

// HistoryStore keeps per-session chat transcripts.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, msg models.ChatMessage) error
	Get(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	Clear(ctx context.Context, sessionID string) error
}

// AssistantService defines the interface for the orchestration operations.
type AssistantService interface {
	GenerateReply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
	GetHistory(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
	ListAvailability(ctx context.Context, windowDays int) (json.RawMessage, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (json.RawMessage, error)
	CreatePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (*models.PaymentLink, error)
	ReceivePaymentNotification(ctx context.Context, payload json.RawMessage)
}

// DefaultAssistantService implements AssistantService. Payments may be
// nil when no payment credential is configured; link creation then fails
// with ErrPaymentNotConfigured before any outbound call.
type DefaultAssistantService struct {
	Inference InferenceClient
	Calendar  CalendarClient
	Payments  PaymentsClient
	History   HistoryStore

	EventType     config.EventTypeRef
	Location      *time.Location
	PublicBaseURL string
	SystemPrompt  string

	// Now overrides the clock in tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultAssistantService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
