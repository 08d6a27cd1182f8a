package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"turnera/models"
	"turnera/services/assistant"
	"turnera/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AssistantHandler exposes the orchestration operations over HTTP.
type AssistantHandler struct {
	Service assistant.AssistantService
	Logger  *zap.Logger
}

func NewAssistantHandler(svc assistant.AssistantService, logger *zap.Logger) *AssistantHandler {
	return &AssistantHandler{Service: svc, Logger: logger}
}

// ChatHandler handles POST /api/chat.
func (h *AssistantHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chat request", err.Error())
		return
	}

	resp, err := h.Service.GenerateReply(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("chat reply failed", zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChatHistoryHandler handles GET /api/chat/history/:sessionID.
func (h *AssistantHandler) ChatHistoryHandler(c *gin.Context) {
	sessionID := c.Param("sessionID")
	msgs, err := h.Service.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		h.Logger.Error("history fetch failed", zap.String("session", sessionID), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "messages": msgs})
}

// SlotsHandler handles GET /api/slots?days=N.
func (h *AssistantHandler) SlotsHandler(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(assistant.DefaultWindowDays)))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid days parameter", err.Error())
		return
	}

	slots, err := h.Service.ListAvailability(c.Request.Context(), days)
	if err != nil {
		h.Logger.Error("slot listing failed", zap.Int("days", days), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", slots)
}

// CreateBookingHandler handles POST /api/bookings.
func (h *AssistantHandler) CreateBookingHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	confirmation, err := h.Service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("booking failed", zap.String("email", req.Email), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", confirmation)
}

// PaymentLinkHandler handles POST /api/payments/link.
func (h *AssistantHandler) PaymentLinkHandler(c *gin.Context) {
	var req models.PaymentLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment request", err.Error())
		return
	}

	link, err := h.Service.CreatePaymentLink(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("payment link failed", zap.String("bookingId", req.BookingID), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// PaymentWebhookHandler handles POST /api/payments/webhook. Any payload
// is acknowledged; authenticity is not verified.
func (h *AssistantHandler) PaymentWebhookHandler(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable notification body", err.Error())
		return
	}
	h.Service.ReceivePaymentNotification(c.Request.Context(), json.RawMessage(payload))
	c.JSON(http.StatusOK, gin.H{"received": true})
}
