package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/models"
)

type credentialsForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *Handler) ShowLogin(c *gin.Context) {
	if _, ok := h.sessions.Token(c); ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, http.StatusOK, "login.html", gin.H{"Title": "Sign In", "Username": ""})
}

func (h *Handler) Login(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "login.html", gin.H{
			"Title":    "Sign In",
			"Username": form.Username,
			"Errors":   fieldErrors(err),
		})
		return
	}

	auth, err := h.api.Login(c.Request.Context(), models.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		message := h.quietAPIError(c, err, "Login failed")
		h.render(c, http.StatusUnauthorized, "login.html", gin.H{
			"Title":    "Sign In",
			"Username": form.Username,
			"Alert":    message,
		})
		return
	}

	h.sessions.Set(c, auth.Token)
	h.logger.Info("Admin logged in", zap.String("username", auth.User.Username))
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) ShowRegister(c *gin.Context) {
	if _, ok := h.sessions.Token(c); ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	h.render(c, http.StatusOK, "register.html", gin.H{"Title": "Register", "Username": ""})
}

func (h *Handler) Register(c *gin.Context) {
	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, "register.html", gin.H{
			"Title":    "Register",
			"Username": form.Username,
			"Errors":   fieldErrors(err),
		})
		return
	}

	auth, err := h.api.Register(c.Request.Context(), models.Credentials{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		message := h.quietAPIError(c, err, "Registration failed")
		h.render(c, http.StatusBadRequest, "register.html", gin.H{
			"Title":    "Register",
			"Username": form.Username,
			"Alert":    message,
		})
		return
	}

	h.sessions.Set(c, auth.Token)
	h.logger.Info("Admin registered", zap.String("username", auth.User.Username))
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout tells the backend best-effort, then destroys the local
// credential either way.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.api.Logout(c.Request.Context(), sessionToken(c)); err != nil {
		h.logger.Warn("Backend logout failed", zap.Error(err))
	}
	h.sessions.Clear(c)
	c.Redirect(http.StatusSeeOther, "/login")
}
