package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, rec
}

func TestStore(t *testing.T) {
	store := NewStore("adminToken", time.Hour, false)

	t.Run("absent credential", func(t *testing.T) {
		c, _ := newContext()
		if _, ok := store.Token(c); ok {
			t.Fatal("expected no token on a fresh request")
		}
	})

	t.Run("empty credential counts as absent", func(t *testing.T) {
		c, _ := newContext(&http.Cookie{Name: "adminToken", Value: ""})
		if _, ok := store.Token(c); ok {
			t.Fatal("an empty cookie must not pass the gate")
		}
	})

	t.Run("set then read", func(t *testing.T) {
		setCtx, rec := newContext()
		store.Set(setCtx, "opaque-bearer-value")

		c, _ := newContext(rec.Result().Cookies()...)
		token, ok := store.Token(c)
		if !ok || token != "opaque-bearer-value" {
			t.Fatalf("expected the stored token back, got %q (ok=%v)", token, ok)
		}
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		c, rec := newContext()
		store.Clear(c)

		cleared := false
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "adminToken" && cookie.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Fatal("expected the credential cookie to be expired")
		}
	})
}
