package assistant

import (
	"context"
	"errors"
	"testing"

	"turnera/utils"
)

func TestListAvailability_WindowDates(t *testing.T) {
	svc, _, cal, _ := newTestService(t, idRef())

	if _, err := svc.ListAvailability(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cal.lastQuery.Start != "2025-01-01" {
		t.Errorf("expected start 2025-01-01, got %s", cal.lastQuery.Start)
	}
	if cal.lastQuery.End != "2025-01-08" {
		t.Errorf("expected end 2025-01-08, got %s", cal.lastQuery.End)
	}
	if cal.lastQuery.TimeZone != "America/Argentina/Buenos_Aires" {
		t.Errorf("unexpected time zone %s", cal.lastQuery.TimeZone)
	}
}

func TestListAvailability_WindowEndTracksDays(t *testing.T) {
	for days, wantEnd := range map[int]string{
		1:  "2025-01-02",
		14: "2025-01-15",
		31: "2025-02-01",
	} {
		svc, _, cal, _ := newTestService(t, idRef())
		if _, err := svc.ListAvailability(context.Background(), days); err != nil {
			t.Fatalf("days=%d: unexpected error: %v", days, err)
		}
		if cal.lastQuery.End != wantEnd {
			t.Errorf("days=%d: expected end %s, got %s", days, wantEnd, cal.lastQuery.End)
		}
	}
}

func TestListAvailability_RejectsWindowBelowOneDay(t *testing.T) {
	svc, _, cal, _ := newTestService(t, idRef())

	if _, err := svc.ListAvailability(context.Background(), 0); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow, got %v", err)
	}
	if cal.slotCalls != 0 {
		t.Errorf("expected no upstream call, got %d", cal.slotCalls)
	}
}

func TestListAvailability_AddressingByID(t *testing.T) {
	svc, _, cal, _ := newTestService(t, idRef())

	if _, err := svc.ListAvailability(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := cal.lastQuery
	if q.EventType.ID != 42 {
		t.Errorf("expected event type id 42, got %d", q.EventType.ID)
	}
	if q.EventType.Username != "" || q.EventType.Slug != "" {
		t.Errorf("id mode must not carry username/slug, got %q/%q", q.EventType.Username, q.EventType.Slug)
	}
}

func TestListAvailability_AddressingBySlug(t *testing.T) {
	svc, _, cal, _ := newTestService(t, slugRef())

	if _, err := svc.ListAvailability(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := cal.lastQuery
	if q.EventType.ID != 0 {
		t.Errorf("slug mode must not carry an id, got %d", q.EventType.ID)
	}
	if q.EventType.Username != "ana" || q.EventType.Slug != "consulta-30m" {
		t.Errorf("unexpected pair %q/%q", q.EventType.Username, q.EventType.Slug)
	}
}

func TestListAvailability_UpstreamErrorPassesThrough(t *testing.T) {
	svc, _, cal, _ := newTestService(t, idRef())
	cal.response = nil
	cal.err = &utils.UpstreamError{StatusCode: 404, Body: []byte(`{"error":"event type not found"}`)}

	_, err := svc.ListAvailability(context.Background(), 7)
	var upstream *utils.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upstream.StatusCode != 404 {
		t.Errorf("expected status 404, got %d", upstream.StatusCode)
	}
	if string(upstream.Body) != `{"error":"event type not found"}` {
		t.Errorf("body not preserved verbatim: %s", upstream.Body)
	}
}
