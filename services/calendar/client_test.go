package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"turnera/config"
	"turnera/utils"
)

func TestGetSlots_QueryAndHeaders(t *testing.T) {
	var gotReq *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"slots":{"2025-01-02":[{"start":"2025-01-02T10:00:00","end":"2025-01-02T10:30:00"}]}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "cal_key")
	body, err := client.GetSlots(context.Background(), SlotQuery{
		Start:     "2025-01-01",
		End:       "2025-01-08",
		TimeZone:  "America/Argentina/Buenos_Aires",
		EventType: config.EventTypeRef{Mode: config.ByEventTypeID, ID: 42},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotReq.URL.Path != "/slots" {
		t.Errorf("unexpected path %s", gotReq.URL.Path)
	}
	if got := gotReq.Header.Get("Authorization"); got != "Bearer cal_key" {
		t.Errorf("unexpected auth header %q", got)
	}
	if got := gotReq.Header.Get("cal-api-version"); got != "2024-06-01" {
		t.Errorf("unexpected api version header %q", got)
	}
	q := gotReq.URL.Query()
	if q.Get("start") != "2025-01-01" || q.Get("end") != "2025-01-08" {
		t.Errorf("unexpected window %s..%s", q.Get("start"), q.Get("end"))
	}
	if q.Get("eventTypeId") != "42" {
		t.Errorf("expected eventTypeId 42, got %q", q.Get("eventTypeId"))
	}
	if q.Has("username") || q.Has("eventTypeSlug") {
		t.Errorf("id mode must not send username/slug, query was %v", q)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("body is not the upstream JSON: %v", err)
	}
}

func TestGetSlots_SlugModeQuery(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"slots":{}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "cal_key")
	_, err := client.GetSlots(context.Background(), SlotQuery{
		Start:     "2025-01-01",
		End:       "2025-01-08",
		TimeZone:  "America/Argentina/Buenos_Aires",
		EventType: config.EventTypeRef{Mode: config.BySlugAndUsername, Username: "ana", Slug: "consulta-30m"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := gotQuery["username"]; len(got) != 1 || got[0] != "ana" {
		t.Errorf("expected username ana, got %v", got)
	}
	if got := gotQuery["eventTypeSlug"]; len(got) != 1 || got[0] != "consulta-30m" {
		t.Errorf("expected slug consulta-30m, got %v", got)
	}
	if _, ok := gotQuery["eventTypeId"]; ok {
		t.Error("slug mode must not send eventTypeId")
	}
}

func TestCreateBooking_BodyShape(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request body: %v", err)
		}
		w.Write([]byte(`{"status":"success","data":{"id":99}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "cal_key")
	confirmation, err := client.CreateBooking(context.Background(), BookingPayload{
		Start:       "2025-10-02T18:00:00",
		End:         "2025-10-02T18:30:00",
		TimeZone:    "America/Argentina/Buenos_Aires",
		Language:    "es",
		Attendees:   []Attendee{{Email: "a@b.com", Name: "a@b.com"}},
		EventTypeID: 42,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(confirmation) != `{"status":"success","data":{"id":99}}` {
		t.Errorf("confirmation not verbatim: %s", confirmation)
	}

	if gotBody["eventTypeId"] != float64(42) {
		t.Errorf("expected numeric eventTypeId 42, got %v", gotBody["eventTypeId"])
	}
	if _, ok := gotBody["username"]; ok {
		t.Error("id mode must not send username")
	}
	if _, ok := gotBody["eventTypeSlug"]; ok {
		t.Error("id mode must not send eventTypeSlug")
	}
	attendees, ok := gotBody["attendees"].([]any)
	if !ok || len(attendees) != 1 {
		t.Fatalf("expected one attendee, got %v", gotBody["attendees"])
	}
}

func TestClient_Non2xxPreservedVerbatim(t *testing.T) {
	const upstreamBody = `{"error":{"code":"TooManyRequests","message":"slow down"}}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(upstreamBody))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, "cal_key")
	_, err := client.GetSlots(context.Background(), SlotQuery{Start: "2025-01-01", End: "2025-01-08"})

	var upstream *utils.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", upstream.StatusCode)
	}
	if string(upstream.Body) != upstreamBody {
		t.Errorf("body not byte-for-byte: %s", upstream.Body)
	}
}

func TestClient_NetworkFailureIsGenericError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClientWithBaseURL(srv.URL, "cal_key")
	_, err := client.GetSlots(context.Background(), SlotQuery{Start: "2025-01-01", End: "2025-01-08"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var upstream *utils.UpstreamError
	if errors.As(err, &upstream) {
		t.Errorf("network failure must not be an UpstreamError, got %v", err)
	}
}
