package models

// PaymentLinkRequest asks for a checkout link covering one booking.
// Title, amount and currency fall back to the house defaults when empty.
type PaymentLinkRequest struct {
	BookingID string  `json:"booking_id" binding:"required"`
	Title     string  `json:"title"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// PaymentLink is the created checkout preference. CheckoutURL may be
// empty when the provider returns no init point.
type PaymentLink struct {
	OK           bool   `json:"ok"`
	PreferenceID string `json:"preference_id"`
	CheckoutURL  string `json:"checkout_url"`
}
