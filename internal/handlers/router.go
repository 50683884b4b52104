package handlers

import (
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/clients"
	"github.com/gracefellowship/admin-console/internal/config"
	"github.com/gracefellowship/admin-console/internal/session"
)

// NewRouter builds the full route table. Everything except login and
// registration sits behind the session gate; unmatched paths land on the
// dashboard.
func NewRouter(cfg *config.Config, api *clients.Client, logger *zap.Logger) *gin.Engine {
	sessions := session.NewStore(cfg.Session.CookieName, cfg.Session.MaxAge, cfg.Session.Secure)
	h := New(cfg, api, sessions, logger)

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.Use(gin.Recovery())

	r.SetFuncMap(template.FuncMap{
		"formatDate": formatDate,
	})
	r.LoadHTMLGlob(cfg.Web.TemplateGlob)
	r.Static("/static", cfg.Web.StaticDir)

	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.Register)

	protected := r.Group("/", h.RequireSession())
	{
		protected.GET("/", h.Dashboard)

		protected.GET("/events", h.ListEvents)
		protected.GET("/events/new", h.NewEventForm)
		protected.POST("/events/new", h.SaveEvent)
		protected.GET("/events/edit/:id", h.EditEventForm)
		protected.POST("/events/edit/:id", h.SaveEvent)
		protected.POST("/events/:id/delete", h.DeleteEvent)

		protected.GET("/teachings", h.ListTeachings)
		protected.GET("/teachings/new", h.NewTeachingForm)
		protected.POST("/teachings/new", h.SaveTeaching)
		protected.GET("/teachings/edit/:id", h.EditTeachingForm)
		protected.POST("/teachings/edit/:id", h.SaveTeaching)
		protected.POST("/teachings/:id/publish-toggle", h.TogglePublishTeaching)

		protected.GET("/settings", h.Settings)
		protected.POST("/logout", h.Logout)
	}

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/")
	})

	return r
}

// formatDate renders a backend timestamp or calendar date for display,
// passing through anything it cannot parse.
func formatDate(value string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}
