package config

import (
	"errors"
	"fmt"
	"strconv"
)

// AddressingMode selects how a Cal.com event type is addressed.
type AddressingMode int

const (
	// ByEventTypeID addresses the event type with its numeric identifier.
	ByEventTypeID AddressingMode = iota
	// BySlugAndUsername addresses it with a (host username, slug) pair.
	BySlugAndUsername
)

// EventTypeRef is the event-type address resolved once at startup.
// Exactly one addressing mode is populated; the numeric identifier wins
// when both are configured.
type EventTypeRef struct {
	Mode     AddressingMode
	ID       int
	Username string
	Slug     string
}

// ErrNoEventType is returned when neither addressing mode can be resolved
// from configuration.
var ErrNoEventType = errors.New("set CAL_EVENT_TYPE_ID or both CAL_USERNAME and CAL_EVENT_TYPE_SLUG")

// ResolveEventTypeRef picks the addressing mode from the raw configuration
// values. A numeric event-type id takes precedence; otherwise both the
// username and the slug are required.
func ResolveEventTypeRef(idRaw, username, slug string) (EventTypeRef, error) {
	if idRaw != "" {
		id, err := strconv.Atoi(idRaw)
		if err != nil {
			return EventTypeRef{}, fmt.Errorf("CAL_EVENT_TYPE_ID must be numeric, got %q", idRaw)
		}
		return EventTypeRef{Mode: ByEventTypeID, ID: id}, nil
	}
	if username != "" && slug != "" {
		return EventTypeRef{Mode: BySlugAndUsername, Username: username, Slug: slug}, nil
	}
	return EventTypeRef{}, ErrNoEventType
}
