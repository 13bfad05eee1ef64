package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := entities.SessionUser{Email: "admin@torchlinegroup.com", Role: entities.UserRoleAdmin}

	newRouter := func(h *CatalogHandler) *gin.Engine {
		r := gin.New()
		r.GET("/v1/services", h.ListServices)
		g := r.Group("/v1/admin/store", withUser(admin))
		g.GET("/collections", h.Collections)
		g.GET("/stats", h.Stats)
		return r
	}

	t.Run("services", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newRouter(NewCatalogHandler(mocks.NewMockIStoreAdminUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/services", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 6 || body[0]["tag"] != "ocean" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("collections", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreAdminUseCase(ctrl)
		r := newRouter(NewCatalogHandler(uc))

		uc.EXPECT().Collections(gomock.Any(), admin.Email).Return([]entities.CollectionInfo{{Name: "users", Count: 4}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/store/collections", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("stats failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStoreAdminUseCase(ctrl)
		r := newRouter(NewCatalogHandler(uc))

		uc.EXPECT().Stats(gomock.Any(), admin.Email).Return(entities.StoreStats{}, errors.New("timeout"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/store/stats", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
