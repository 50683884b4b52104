package handlers

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gracefellowship/admin-console/internal/clients"
	"github.com/gracefellowship/admin-console/internal/config"
	"github.com/gracefellowship/admin-console/internal/flash"
)

// fakeBackend is an httptest stand-in for the content backend. It records
// every call so tests can assert which operations ran.
type fakeBackend struct {
	mux *http.ServeMux
	srv *httptest.Server

	mu    sync.Mutex
	calls []string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{mux: http.NewServeMux()}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.calls = append(f.calls, r.Method+" "+r.URL.Path)
		f.mu.Unlock()
		f.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeBackend) handle(pattern string, handler http.HandlerFunc) {
	f.mux.HandleFunc(pattern, handler)
}

func (f *fakeBackend) callCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": message})
}

func newTestRouter(t *testing.T, backendURL string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Backend.URL = backendURL
	cfg.Backend.Timeout = 5 * time.Second
	cfg.Session.CookieName = "adminToken"
	cfg.Session.MaxAge = time.Hour
	cfg.Web.TemplateGlob = "../../web/templates/*.html"
	cfg.Web.StaticDir = "../../web/static"

	api := clients.New(cfg.Backend.URL, cfg.Backend.Timeout, zap.NewNop())
	return NewRouter(cfg, api, zap.NewNop())
}

func httptestRequest(method, path, form string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func newRecorder(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// doRequest performs a request against the router with a session cookie
// attached, since every interesting route sits behind the gate.
func doRequest(router *gin.Engine, method, path, contentType string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.AddCookie(&http.Cookie{Name: "adminToken", Value: "test-token"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// flashMessage decodes the one-shot notification cookie set by the
// response, if any.
func flashMessage(t *testing.T, rec *httptest.ResponseRecorder) (flash.Message, bool) {
	t.Helper()
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name != "flash" || cookie.Value == "" {
			continue
		}
		// gin escapes cookie values on the way out.
		raw, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			t.Fatalf("failed to unescape flash cookie: %v", err)
		}
		data, err := base64.URLEncoding.DecodeString(raw)
		if err != nil {
			t.Fatalf("failed to decode flash cookie: %v", err)
		}
		var msg flash.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			t.Fatalf("failed to unmarshal flash cookie: %v", err)
		}
		return msg, true
	}
	return flash.Message{}, false
}
