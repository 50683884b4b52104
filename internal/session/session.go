// Package session owns the credential cookie. The token inside it is an
// opaque bearer string issued by the backend; nothing here inspects or
// validates it, and no other package reads the cookie directly.
package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Store struct {
	cookieName string
	maxAge     time.Duration
	secure     bool
}

func NewStore(cookieName string, maxAge time.Duration, secure bool) *Store {
	return &Store{
		cookieName: cookieName,
		maxAge:     maxAge,
		secure:     secure,
	}
}

// Token returns the stored credential, if any. Presence is the only
// signal of authentication this client uses.
func (s *Store) Token(c *gin.Context) (string, bool) {
	token, err := c.Cookie(s.cookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}

func (s *Store) Set(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, int(s.maxAge.Seconds()), "/", "", s.secure, true)
}

func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}
