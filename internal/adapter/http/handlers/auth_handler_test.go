package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/adapter/http/middleware"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/infrastructure/session"
	"torchline_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(h *AuthHandler, sessions *session.Manager) *gin.Engine {
	r := gin.New()
	r.POST("/v1/auth/login", h.Login)
	r.POST("/v1/auth/logout", h.Logout)
	r.GET("/v1/auth/me", middleware.RequireAuth(sessions), h.Me)
	return r
}

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := session.NewManager(session.NewCookieStore("test-secret", false))
		r := newAuthRouter(NewAuthHandler(uc, sessions), sessions)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong password sets no session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := session.NewManager(session.NewCookieStore("test-secret", false))
		r := newAuthRouter(NewAuthHandler(uc, sessions), sessions)

		uc.EXPECT().Login(gomock.Any(), "john@example.com", "nope").Return(entities.SessionUser{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":" john@example.com ","password":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if cookies := w.Result().Cookies(); len(cookies) != 0 {
			t.Fatalf("expected no session cookie, got %v", cookies)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := session.NewManager(session.NewCookieStore("test-secret", false))
		r := newAuthRouter(NewAuthHandler(uc, sessions), sessions)

		uc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.SessionUser{}, errors.New("store down"))

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"a@b.com","password":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success then me then logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := session.NewManager(session.NewCookieStore("test-secret", false))
		r := newAuthRouter(NewAuthHandler(uc, sessions), sessions)

		user := entities.SessionUser{Email: "john@example.com", Name: "John Customer", Role: entities.UserRoleCustomer, Company: "Acme"}
		uc.EXPECT().Login(gomock.Any(), "john@example.com", "customer123").Return(user, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"john@example.com","password":"customer123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("expected one session cookie, got %v", cookies)
		}

		req = httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.AddCookie(cookies[0])
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			User entities.SessionUser `json:"user"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.User != user {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}

		req = httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
		req.AddCookie(cookies[0])
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cleared := w.Result().Cookies()
		if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
			t.Fatalf("expected expired session cookie, got %v", cleared)
		}

		// A client honouring the expiry sends no cookie afterwards.
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("logout without session still clears", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		sessions := session.NewManager(session.NewCookieStore("test-secret", false))
		r := newAuthRouter(NewAuthHandler(uc, sessions), sessions)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		cleared := w.Result().Cookies()
		if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
			t.Fatalf("expected expired session cookie, got %v", cleared)
		}
	})
}
