package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"torchline_portal/internal/adapter/http/handlers/mocks"
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReportRouter(h *ReportHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1", withUser(employee))
	g.GET("/analytics", h.GetAnalytics)
	g.POST("/reports", h.GenerateReport)
	g.POST("/reports/schedule", h.ScheduleReport)
	return r
}

func TestReportHandler_GetAnalytics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	analytics := mocks.NewMockIAnalyticsUseCase(ctrl)
	r := newReportRouter(NewReportHandler(analytics, mocks.NewMockIReportUseCase(ctrl)))

	snap := entities.EmptyAnalyticsSnapshot()
	snap.TotalQuotes = 10
	snap.ApprovedQuotes = 4
	snap.ConversionRate = 40
	analytics.EXPECT().GetAnalytics(gomock.Any(), employee.Email).Return(snap)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/analytics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["conversionRate"] != float64(40) || body["totalQuotes"] != float64(10) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestReportHandler_GenerateReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("file download", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		r := newReportRouter(NewReportHandler(mocks.NewMockIAnalyticsUseCase(ctrl), reports))

		reports.EXPECT().GenerateReport(gomock.Any(), usecase.ReportRequest{GeneratedBy: employee.Email, Format: entities.ReportFormatExcel}).Return(
			entities.Report{ID: "report_1"},
			entities.RenderedReport{FileName: "torchline_analytics_report_2026-08-03.xlsx", ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Content: []byte("PK")},
			nil,
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewBufferString(`{"format":"excel"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="torchline_analytics_report_2026-08-03.xlsx"` {
			t.Fatalf("unexpected disposition %q", got)
		}
		if w.Header().Get("X-Report-Id") != "report_1" || w.Body.String() != "PK" {
			t.Fatalf("unexpected download %q", w.Body.String())
		}
	})

	t.Run("unsupported format", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		r := newReportRouter(NewReportHandler(mocks.NewMockIAnalyticsUseCase(ctrl), reports))

		reports.EXPECT().GenerateReport(gomock.Any(), gomock.Any()).Return(entities.Report{}, entities.RenderedReport{}, usecase.ErrUnsupportedReportFormat)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports", bytes.NewBufferString(`{"format":"csv"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportHandler_ScheduleReport(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid schedule", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		r := newReportRouter(NewReportHandler(mocks.NewMockIAnalyticsUseCase(ctrl), reports))

		reports.EXPECT().ScheduleReport(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Report{}, usecase.ErrInvalidSchedule)

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/schedule", bytes.NewBufferString(`{"schedule":{"frequency":"hourly","time":"09:00"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		reports := mocks.NewMockIReportUseCase(ctrl)
		r := newReportRouter(NewReportHandler(mocks.NewMockIAnalyticsUseCase(ctrl), reports))

		reports.EXPECT().ScheduleReport(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, req usecase.ReportRequest, s entities.ScheduleConfig) (entities.Report, error) {
				if req.Name != "weekly" || req.GeneratedBy != employee.Email {
					t.Errorf("unexpected request %+v", req)
				}
				if s.Frequency != entities.ScheduleFrequencyWeekly || s.DayOfWeek == nil || *s.DayOfWeek != 1 || s.Time != "09:00" {
					t.Errorf("unexpected schedule %+v", s)
				}
				return entities.Report{ID: "scheduled_1", Scheduled: true, ScheduleConfig: &s}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/reports/schedule", bytes.NewBufferString(`{"name":"weekly","schedule":{"frequency":"weekly","dayOfWeek":1,"time":"09:00"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "scheduled_1" || body["scheduled"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
