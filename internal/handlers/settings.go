package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/models"
)

// Settings is a read-only panel: the configured backend URL plus the
// admin identity as the backend reports it. The verify call is
// best-effort; the page renders without it.
func (h *Handler) Settings(c *gin.Context) {
	var user models.User
	verified := false
	if u, err := h.api.Verify(c.Request.Context(), sessionToken(c)); err != nil {
		h.logger.Warn("Token verification failed", zap.Error(err))
	} else {
		user = u
		verified = true
	}

	h.render(c, http.StatusOK, "settings.html", gin.H{
		"Title":      "Settings",
		"BackendURL": h.cfg.Backend.URL,
		"User":       user,
		"Verified":   verified,
	})
}
