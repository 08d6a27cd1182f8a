// File: turnera/services/calendar/client.go
package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"turnera/config"
	"turnera/utils"
)

const (
	// DefaultBaseURL is the Cal.com v2 API root.
	DefaultBaseURL = "https://api.cal.com/v2"
	apiVersion     = "2024-06-01"
)

// Client is a thin Cal.com v2 client covering slot listing and booking
// creation. Every call carries the bearer credential and the pinned API
// version header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, apiKey)
}

func NewClientWithBaseURL(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SlotQuery selects a date window for one event type.
type SlotQuery struct {
	Start     string
	End       string
	TimeZone  string
	EventType config.EventTypeRef
}

// Attendee is the person a booking is made for.
type Attendee struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// BookingPayload is the Cal.com v2 booking creation body. Exactly one
// addressing mode is populated; the zero-valued fields are omitted.
type BookingPayload struct {
	Start         string            `json:"start"`
	End           string            `json:"end"`
	TimeZone      string            `json:"timeZone"`
	Language      string            `json:"language"`
	Attendees     []Attendee        `json:"attendees"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	EventTypeID   int               `json:"eventTypeId,omitempty"`
	EventTypeSlug string            `json:"eventTypeSlug,omitempty"`
	Username      string            `json:"username,omitempty"`
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("cal-api-version", apiVersion)
}

// GetSlots fetches available slots for the window. The grouped-by-day
// upstream structure is returned untouched; flattening is up to the
// caller.
func (c *Client) GetSlots(ctx context.Context, q SlotQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("start", q.Start)
	params.Set("end", q.End)
	params.Set("timeZone", q.TimeZone)
	switch q.EventType.Mode {
	case config.ByEventTypeID:
		params.Set("eventTypeId", strconv.Itoa(q.EventType.ID))
	case config.BySlugAndUsername:
		params.Set("username", q.EventType.Username)
		params.Set("eventTypeSlug", q.EventType.Slug)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/slots?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build slots request: %w", err)
	}
	c.setHeaders(req)
	return c.do(req)
}

// CreateBooking creates a booking and returns the upstream confirmation
// body verbatim.
func (c *Client) CreateBooking(ctx context.Context, payload BookingPayload) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal booking payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call scheduling service: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read scheduling response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &utils.UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}
	return json.RawMessage(body), nil
}
