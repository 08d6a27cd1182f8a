package assistant

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"turnera/config"
	"turnera/models"
	"turnera/services/calendar"
	"turnera/services/payments"
)

// ============================================
// Upstream mocks
// ============================================

type mockInference struct {
	lastPrompt      string
	lastMaxTokens   int
	lastTemperature float64
	calls           int
	answer          string
	err             error
}

func (m *mockInference) Generate(_ context.Context, prompt string, maxNewTokens int, temperature float64) (string, error) {
	m.calls++
	m.lastPrompt = prompt
	m.lastMaxTokens = maxNewTokens
	m.lastTemperature = temperature
	return m.answer, m.err
}

type mockCalendar struct {
	lastQuery   calendar.SlotQuery
	lastPayload calendar.BookingPayload
	slotCalls   int
	bookCalls   int
	response    json.RawMessage
	err         error
}

func (m *mockCalendar) GetSlots(_ context.Context, q calendar.SlotQuery) (json.RawMessage, error) {
	m.slotCalls++
	m.lastQuery = q
	return m.response, m.err
}

func (m *mockCalendar) CreateBooking(_ context.Context, payload calendar.BookingPayload) (json.RawMessage, error) {
	m.bookCalls++
	m.lastPayload = payload
	return m.response, m.err
}

type mockPayments struct {
	lastPref payments.Preference
	calls    int
	result   *payments.PreferenceResult
	err      error
}

func (m *mockPayments) CreatePreference(_ context.Context, pref payments.Preference) (*payments.PreferenceResult, error) {
	m.calls++
	m.lastPref = pref
	return m.result, m.err
}

type memoryHistory struct {
	transcripts map[string][]models.ChatMessage
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{transcripts: make(map[string][]models.ChatMessage)}
}

func (m *memoryHistory) Append(_ context.Context, sessionID string, msg models.ChatMessage) error {
	m.transcripts[sessionID] = append(m.transcripts[sessionID], msg)
	return nil
}

func (m *memoryHistory) Get(_ context.Context, sessionID string) ([]models.ChatMessage, error) {
	return m.transcripts[sessionID], nil
}

func (m *memoryHistory) Clear(_ context.Context, sessionID string) error {
	delete(m.transcripts, sessionID)
	return nil
}

// ============================================
// Service fixture
// ============================================

func buenosAires(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func newTestService(t *testing.T, ref config.EventTypeRef) (*DefaultAssistantService, *mockInference, *mockCalendar, *mockPayments) {
	t.Helper()
	inf := &mockInference{answer: "hola"}
	cal := &mockCalendar{response: json.RawMessage(`{"slots":{}}`)}
	pay := &mockPayments{result: &payments.PreferenceResult{ID: "pref_1", InitPoint: "https://mp.example/checkout"}}
	svc := &DefaultAssistantService{
		Inference:     inf,
		Calendar:      cal,
		Payments:      pay,
		History:       newMemoryHistory(),
		EventType:     ref,
		Location:      buenosAires(t),
		PublicBaseURL: "https://turnera.example",
		SystemPrompt:  config.DefaultSystemPrompt,
		// 15:00 UTC is noon in Buenos Aires, same calendar date.
		Now: func() time.Time { return time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC) },
	}
	return svc, inf, cal, pay
}

func idRef() config.EventTypeRef {
	return config.EventTypeRef{Mode: config.ByEventTypeID, ID: 42}
}

func slugRef() config.EventTypeRef {
	return config.EventTypeRef{Mode: config.BySlugAndUsername, Username: "ana", Slug: "consulta-30m"}
}
