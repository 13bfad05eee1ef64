package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	request "torchline_portal/internal/adapter/http/dto/request"
	"torchline_portal/internal/usecase"
	"torchline_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidReportPayload = pkg.NewDomainErrorSimple("INVALID_REPORT_INPUT", "Invalid report payload", http.StatusBadRequest)

// ReportHandler serves the analytics dashboard and its exports.
type ReportHandler struct {
	analytics usecase.IAnalyticsUseCase
	reports   usecase.IReportUseCase
}

func NewReportHandler(analytics usecase.IAnalyticsUseCase, reports usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{analytics: analytics, reports: reports}
}

// GetAnalytics godoc
// @Summary      Quote analytics snapshot
// @Description  Never fails: a store error yields an all-zero snapshot.
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  entities.AnalyticsSnapshot
// @Router       /analytics [get]
func (h *ReportHandler) GetAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, h.analytics.GetAnalytics(c.Request.Context(), actor(c)))
}

// GenerateReport godoc
// @Summary      Generate and download an analytics report
// @Tags         analytics
// @Accept       json
// @Produce      application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body  body  request.ReportRequest  false  "Report options (format pdf|excel)"
// @Success      200   {file}    file
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reports [post]
func (h *ReportHandler) GenerateReport(c *gin.Context) {
	var payload request.ReportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
			return
		}
	}

	report, file, err := h.reports.GenerateReport(c.Request.Context(), payload.ToUseCase(actor(c)))
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[report][handler] generated report_id=%s file=%s bytes=%d", report.ID, file.FileName, len(file.Content))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Header("X-Report-Id", report.ID)
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// ScheduleReport godoc
// @Summary      Schedule a recurring report
// @Tags         analytics
// @Accept       json
// @Produce      json
// @Param        body  body      request.ScheduleReportRequest  true  "Report options and schedule"
// @Success      201   {object}  entities.Report
// @Failure      400   {object}  pkg.HTTPError
// @Router       /reports/schedule [post]
func (h *ReportHandler) ScheduleReport(c *gin.Context) {
	var payload request.ScheduleReportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidReportPayload.HTTPStatus, errInvalidReportPayload.ToHTTPError())
		return
	}

	report, err := h.reports.ScheduleReport(c.Request.Context(), payload.ToUseCase(actor(c)), payload.Schedule)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, report)
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnsupportedReportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_REPORT_FORMAT", "Format must be pdf or excel", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSchedule):
		return pkg.NewDomainErrorSimple("INVALID_SCHEDULE", err.Error(), http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
