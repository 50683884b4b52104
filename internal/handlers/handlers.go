package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/clients"
	"github.com/gracefellowship/admin-console/internal/config"
	"github.com/gracefellowship/admin-console/internal/flash"
	"github.com/gracefellowship/admin-console/internal/session"
)

type Handler struct {
	cfg      *config.Config
	api      *clients.Client
	sessions *session.Store
	logger   *zap.Logger
}

func New(cfg *config.Config, api *clients.Client, sessions *session.Store, logger *zap.Logger) *Handler {
	return &Handler{
		cfg:      cfg,
		api:      api,
		sessions: sessions,
		logger:   logger,
	}
}

// render draws a page, attaching any pending flash notification and the
// current path for nav highlighting.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if msg, ok := flash.Pop(c); ok {
		data["Flash"] = msg
	}
	if _, ok := data["Errors"]; !ok {
		data["Errors"] = map[string]string{}
	}
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}
