package models

// BookingRequest books one slot for one attendee. Start and end are
// ISO-8601 timestamps as returned by the availability query.
type BookingRequest struct {
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

// AvailabilitySlot is a single bookable interval. End is trusted to be
// after start; the scheduling provider owns that invariant.
type AvailabilitySlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
