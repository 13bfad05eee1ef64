package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"torchline_portal/internal/domain/entities"
)

func TestManager(t *testing.T) {
	m := NewManager(NewCookieStore("test-secret", false))
	user := entities.SessionUser{Email: "john@example.com", Name: "John", Role: entities.UserRoleCustomer}

	t.Run("no cookie", func(t *testing.T) {
		if _, err := m.Load(httptest.NewRequest(http.MethodGet, "/", nil)); err != ErrNoSession {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("save then load", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := m.Save(w, httptest.NewRequest(http.MethodPost, "/", nil), user); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].Name != CookieName || !cookies[0].HttpOnly {
			t.Fatalf("unexpected cookies %v", cookies)
		}

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(cookies[0])
		got, err := m.Load(req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got != user {
			t.Fatalf("expected %+v, got %+v", user, got)
		}
	})

	t.Run("tampered cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "garbage"})
		if _, err := m.Load(req); err != ErrNoSession {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("clear expires cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		if err := m.Clear(w, httptest.NewRequest(http.MethodPost, "/", nil)); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
			t.Fatalf("expected expired cookie, got %v", cookies)
		}
	})

	t.Run("other secret rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		_ = m.Save(w, httptest.NewRequest(http.MethodPost, "/", nil), user)
		other := NewManager(NewCookieStore("another-secret", false))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(w.Result().Cookies()[0])
		if _, err := other.Load(req); err != ErrNoSession {
			t.Fatalf("expected ErrNoSession, got %v", err)
		}
	})
}
