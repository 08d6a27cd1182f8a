// File: turnera/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	ChatHandler        gin.HandlerFunc
	ChatHistoryHandler gin.HandlerFunc

	// Scheduling endpoints
	SlotsHandler         gin.HandlerFunc
	CreateBookingHandler gin.HandlerFunc

	// Payment endpoints
	PaymentLinkHandler    gin.HandlerFunc
	PaymentWebhookHandler gin.HandlerFunc
}
