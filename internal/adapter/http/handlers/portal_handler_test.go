package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPortalHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	customer := entities.SessionUser{Email: "john@example.com", Role: entities.UserRoleCustomer}
	vendor := entities.SessionUser{Email: "vendor@example.com", Role: entities.UserRoleVendor}

	t.Run("customer dashboard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc)
		r := gin.New()
		r.GET("/v1/portal/customer", withUser(customer), h.CustomerDashboard)

		uc.EXPECT().CustomerDashboard(gomock.Any(), customer).Return(usecase.CustomerDashboard{
			Shipments: []entities.Shipment{{ID: "s-1", TrackingNumber: "TLG001234567"}},
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/portal/customer", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Shipments []map[string]any `json:"shipments"`
			Quotes    []map[string]any `json:"quotes"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Shipments) != 1 || body.Shipments[0]["id"] != "s-1" || body.Quotes == nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("vendor dashboard failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPortalUseCase(ctrl)
		h := NewPortalHandler(uc)
		r := gin.New()
		r.GET("/v1/portal/vendor", withUser(vendor), h.VendorDashboard)

		uc.EXPECT().VendorDashboard(gomock.Any(), vendor).Return(usecase.VendorDashboard{}, errors.New("store down"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/portal/vendor", nil))
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
