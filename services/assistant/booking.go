package assistant

import (
	"context"
	"encoding/json"

	"turnera/config"
	"turnera/models"
	"turnera/services/calendar"
)

const defaultBookingLanguage = "es"

// buildBookingPayload maps an inbound booking request onto the upstream
// body: one attendee whose name falls back to the email, the configured
// time zone, and the addressing fields of exactly one mode.
func (s *DefaultAssistantService) buildBookingPayload(req models.BookingRequest) calendar.BookingPayload {
	name := req.Name
	if name == "" {
		name = req.Email
	}
	language := req.Language
	if language == "" {
		language = defaultBookingLanguage
	}

	payload := calendar.BookingPayload{
		Start:     req.Start,
		End:       req.End,
		TimeZone:  s.Location.String(),
		Language:  language,
		Attendees: []calendar.Attendee{{Email: req.Email, Name: name}},
		Metadata:  map[string]string{"source": "turnera-web"},
	}
	switch s.EventType.Mode {
	case config.ByEventTypeID:
		payload.EventTypeID = s.EventType.ID
	case config.BySlugAndUsername:
		payload.EventTypeSlug = s.EventType.Slug
		payload.Username = s.EventType.Username
	}
	return payload
}

// CreateBooking books the slot upstream and returns the confirmation
// body verbatim.
func (s *DefaultAssistantService) CreateBooking(ctx context.Context, req models.BookingRequest) (json.RawMessage, error) {
	return s.Calendar.CreateBooking(ctx, s.buildBookingPayload(req))
}
