package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gracefellowship/admin-console/internal/models"
)

func TestLogin(t *testing.T) {
	t.Run("stores the issued token and redirects home", func(t *testing.T) {
		backend := newFakeBackend(t)
		router := newTestRouter(t, backend.srv.URL)
		backend.handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeSuccess(w, models.AuthResponse{
				Token: "issued-token",
				User:  models.User{Username: "admin"},
			})
		})

		form := url.Values{"username": {"admin"}, "password": {"pw"}}
		req := httptestRequest(http.MethodPost, "/login", form.Encode())
		rec := newRecorder(router, req)

		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
			t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
		}
		stored := ""
		for _, cookie := range rec.Result().Cookies() {
			if cookie.Name == "adminToken" {
				stored = cookie.Value
			}
		}
		if stored != "issued-token" {
			t.Fatalf("expected the credential cookie, got %q", stored)
		}
	})

	t.Run("failure keeps the user on the page with the message", func(t *testing.T) {
		backend := newFakeBackend(t)
		router := newTestRouter(t, backend.srv.URL)
		backend.handle("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			writeFailure(w, http.StatusUnauthorized, "Invalid credentials")
		})

		form := url.Values{"username": {"admin"}, "password": {"wrong"}}
		req := httptestRequest(http.MethodPost, "/login", form.Encode())
		rec := newRecorder(router, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401 re-render, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Invalid credentials") {
			t.Fatal("expected the backend message inline")
		}
	})
}

func TestLogout(t *testing.T) {
	backend := newFakeBackend(t)
	router := newTestRouter(t, backend.srv.URL)
	backend.handle("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		writeSuccess(w, nil)
	})

	rec := doRequest(router, http.MethodPost, "/logout", "", nil)
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	cleared := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "adminToken" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected the credential to be destroyed")
	}
	if backend.callCount("POST /auth/logout") != 1 {
		t.Fatal("expected the backend to be told")
	}
}
