package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/clients"
	"github.com/gracefellowship/admin-console/internal/flash"
)

// normalizeAPIError turns any failed backend call into a single display
// string: the backend's own message when the failure carries one, the
// caller's fallback otherwise. The failure is always logged and a flash
// notification is raised. Returns the chosen message.
func (h *Handler) normalizeAPIError(c *gin.Context, err error, fallback string) string {
	return h.normalizeError(c, err, fallback, true)
}

// quietAPIError is the same normalization without the notification, for
// callers that display the message inline instead.
func (h *Handler) quietAPIError(c *gin.Context, err error, fallback string) string {
	return h.normalizeError(c, err, fallback, false)
}

func (h *Handler) normalizeError(c *gin.Context, err error, fallback string, notify bool) string {
	message := fallback

	var apiErr *clients.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		message = apiErr.Message
	}

	h.logger.Error("API error",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err))

	if notify {
		flash.Error(c, message)
	}
	return message
}
