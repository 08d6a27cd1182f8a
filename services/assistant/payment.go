package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"turnera/models"
	"turnera/services/payments"
	"turnera/utils"

	"go.uber.org/zap"
)

const (
	defaultPaymentTitle    = "Reserva"
	defaultPaymentAmount   = 20000.0
	defaultPaymentCurrency = "ARS"
)

// buildPreference assembles the Checkout Pro preference: one line item,
// the booking id as reconciliation metadata, and callback URLs derived
// from this service's own public base address.
func (s *DefaultAssistantService) buildPreference(req models.PaymentLinkRequest) payments.Preference {
	title := req.Title
	if title == "" {
		title = defaultPaymentTitle
	}
	amount := req.Amount
	if amount == 0 {
		amount = defaultPaymentAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = defaultPaymentCurrency
	}

	base := strings.TrimRight(s.PublicBaseURL, "/")
	return payments.Preference{
		Items: []payments.Item{{
			Title:      title,
			Quantity:   1,
			CurrencyID: strings.ToUpper(currency),
			UnitPrice:  amount,
		}},
		Metadata: map[string]string{"booking_id": req.BookingID},
		BackURLs: payments.BackURLs{
			Success: base + "/pay/success",
			Failure: base + "/pay/failure",
			Pending: base + "/pay/pending",
		},
		AutoReturn:      "approved",
		NotificationURL: base + "/api/payments/webhook",
	}
}

// CreatePaymentLink creates a checkout preference for one booking. It
// fails before any outbound call when no payment credential is
// configured.
func (s *DefaultAssistantService) CreatePaymentLink(ctx context.Context, req models.PaymentLinkRequest) (*models.PaymentLink, error) {
	if s.Payments == nil {
		return nil, ErrPaymentNotConfigured
	}
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}

	result, err := s.Payments.CreatePreference(ctx, s.buildPreference(req))
	if err != nil {
		return nil, err
	}
	return &models.PaymentLink{
		OK:           true,
		PreferenceID: result.ID,
		CheckoutURL:  result.InitPoint,
	}, nil
}

// ReceivePaymentNotification acknowledges a provider notification. The
// payload is logged raw for later reconciliation but not verified or
// parsed into payment state.
// TODO: fetch /v1/payments/{data.id} to confirm the payment status before
// trusting the notification.
func (s *DefaultAssistantService) ReceivePaymentNotification(ctx context.Context, payload json.RawMessage) {
	logger := utils.GetLogger()

	var note struct {
		Type string `json:"type"`
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &note); err == nil && note.Type != "" {
		logger.Info("payment notification received",
			zap.String("type", note.Type),
			zap.String("paymentId", note.Data.ID))
		return
	}
	logger.Info("payment notification received", zap.ByteString("payload", payload))
}
