package assistant

import (
	"context"
	"encoding/json"

	"turnera/services/calendar"
)

// DefaultWindowDays is the availability window when the caller does not
// pick one.
const DefaultWindowDays = 7

// dateWindow computes the [today, today+windowDays] date range in the
// configured time zone, dates only.
func (s *DefaultAssistantService) dateWindow(windowDays int) (string, string) {
	today := s.now().In(s.Location)
	start := today.Format("2006-01-02")
	end := today.AddDate(0, 0, windowDays).Format("2006-01-02")
	return start, end
}

// ListAvailability fetches open slots for the next windowDays days. The
// upstream grouped-by-day structure is passed through unchanged.
func (s *DefaultAssistantService) ListAvailability(ctx context.Context, windowDays int) (json.RawMessage, error) {
	if windowDays < 1 {
		return nil, ErrInvalidWindow
	}
	start, end := s.dateWindow(windowDays)
	return s.Calendar.GetSlots(ctx, calendar.SlotQuery{
		Start:     start,
		End:       end,
		TimeZone:  s.Location.String(),
		EventType: s.EventType,
	})
}
