package handlers

import (
	"errors"
	"net/http"

	"turnera/services/assistant"
	"turnera/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service failure to the HTTP response:
// configuration and validation errors are client errors, upstream non-2xx
// responses are relayed with the upstream status and body unchanged, and
// anything else (network, timeout) is a generic bad gateway.
func (h *AssistantHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrPaymentNotConfigured):
		utils.JSONError(c, http.StatusBadRequest, assistant.ErrPaymentNotConfigured.Error(), "set MP_ACCESS_TOKEN")
	case errors.Is(err, assistant.ErrInvalidWindow), errors.Is(err, assistant.ErrInvalidAmount):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
	default:
		var upstream *utils.UpstreamError
		if errors.As(err, &upstream) {
			c.Data(upstream.StatusCode, "application/json", upstream.Body)
			return
		}
		utils.JSONError(c, http.StatusBadGateway, "Upstream service unreachable", err.Error())
	}
}
