package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnsupportedReportFormat = errors.New("unsupported report format")
	ErrInvalidSchedule         = errors.New("invalid report schedule")
)

var scheduleTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ReportRequest describes an on-demand analytics export.
type ReportRequest struct {
	Name        string
	Type        string
	Parameters  map[string]any
	GeneratedBy string
	Format      entities.ReportFormat
}

// IReportUseCase covers the reporting screen:
//   - "Generate & Download Report" => GenerateReport()
//   - "Schedule Report" => ScheduleReport()
type IReportUseCase interface {
	GenerateReport(ctx context.Context, req ReportRequest) (entities.Report, entities.RenderedReport, error)
	ScheduleReport(ctx context.Context, req ReportRequest, schedule entities.ScheduleConfig) (entities.Report, error)
}

type ReportUseCase struct {
	store     interfaces.IDocumentStore
	analytics IAnalyticsUseCase
	renderers map[entities.ReportFormat]interfaces.IReportRenderer
	now       func() time.Time
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store interfaces.IDocumentStore, analytics IAnalyticsUseCase, renderers ...interfaces.IReportRenderer) *ReportUseCase {
	byFormat := make(map[entities.ReportFormat]interfaces.IReportRenderer, len(renderers))
	for _, r := range renderers {
		byFormat[r.Format()] = r
	}
	return &ReportUseCase{
		store:     store,
		analytics: analytics,
		renderers: byFormat,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ReportUseCase) GenerateReport(ctx context.Context, req ReportRequest) (entities.Report, entities.RenderedReport, error) {
	req = normalizeReportRequest(req)
	renderer, ok := u.renderers[req.Format]
	if !ok {
		log.Printf("[report][usecase] no renderer format=%s", req.Format)
		return entities.Report{}, entities.RenderedReport{}, ErrUnsupportedReportFormat
	}

	log.Printf("[report][usecase] generate start name=%s type=%s format=%s by=%s", req.Name, req.Type, req.Format, req.GeneratedBy)
	snapshot := u.analytics.GetAnalytics(ctx, req.GeneratedBy)
	now := u.now()
	report := entities.Report{
		ID:          "report_" + uuid.NewString(),
		Name:        req.Name,
		Type:        req.Type,
		Parameters:  req.Parameters,
		GeneratedAt: now,
		GeneratedBy: req.GeneratedBy,
		Format:      req.Format,
		Data:        snapshot,
	}

	if _, err := u.store.Create(ctx, req.GeneratedBy, CollectionReports, report, []string{"report", req.Type, string(req.Format)}); err != nil {
		log.Printf("[report][usecase] persist failed report_id=%s err=%v", report.ID, err)
		return entities.Report{}, entities.RenderedReport{}, err
	}

	file, err := renderer.Render(snapshot, now)
	if err != nil {
		log.Printf("[report][usecase] render failed report_id=%s format=%s err=%v", report.ID, req.Format, err)
		return entities.Report{}, entities.RenderedReport{}, err
	}
	log.Printf("[report][usecase] generate success report_id=%s bytes=%d", report.ID, len(file.Content))
	return report, file, nil
}

func (u *ReportUseCase) ScheduleReport(ctx context.Context, req ReportRequest, schedule entities.ScheduleConfig) (entities.Report, error) {
	req = normalizeReportRequest(req)
	if _, ok := u.renderers[req.Format]; !ok {
		return entities.Report{}, ErrUnsupportedReportFormat
	}
	if err := validateSchedule(&schedule, req.GeneratedBy); err != nil {
		return entities.Report{}, err
	}

	report := entities.Report{
		ID:             "scheduled_" + uuid.NewString(),
		Name:           req.Name,
		Type:           req.Type,
		Parameters:     req.Parameters,
		GeneratedAt:    u.now(),
		GeneratedBy:    req.GeneratedBy,
		Format:         req.Format,
		Data:           entities.EmptyAnalyticsSnapshot(),
		Scheduled:      true,
		ScheduleConfig: &schedule,
	}
	if _, err := u.store.Create(ctx, req.GeneratedBy, CollectionScheduledReports, report, []string{"scheduled", "report"}); err != nil {
		log.Printf("[report][usecase] schedule failed report_id=%s err=%v", report.ID, err)
		return entities.Report{}, err
	}
	log.Printf("[report][usecase] schedule success report_id=%s frequency=%s time=%s", report.ID, schedule.Frequency, schedule.Time)
	return report, nil
}

func normalizeReportRequest(req ReportRequest) ReportRequest {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		req.Type = "analytics"
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		req.Name = req.Type + "_report"
	}
	req.GeneratedBy = resolveActor(req.GeneratedBy)
	req.Format = entities.ReportFormat(strings.ToLower(strings.TrimSpace(string(req.Format))))
	if req.Format == "" {
		req.Format = entities.ReportFormatPDF
	}
	if req.Parameters == nil {
		req.Parameters = map[string]any{"dateRange": "last_30_days"}
	}
	return req
}

func validateSchedule(s *entities.ScheduleConfig, fallbackRecipient string) error {
	switch s.Frequency {
	case entities.ScheduleFrequencyDaily:
	case entities.ScheduleFrequencyWeekly:
		if s.DayOfWeek == nil || *s.DayOfWeek < 0 || *s.DayOfWeek > 6 {
			return fmt.Errorf("%w: weekly schedule needs dayOfWeek 0-6", ErrInvalidSchedule)
		}
	case entities.ScheduleFrequencyMonthly:
		if s.DayOfMonth == nil || *s.DayOfMonth < 1 || *s.DayOfMonth > 31 {
			return fmt.Errorf("%w: monthly schedule needs dayOfMonth 1-31", ErrInvalidSchedule)
		}
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidSchedule, s.Frequency)
	}
	if !scheduleTimePattern.MatchString(s.Time) {
		return fmt.Errorf("%w: time must be HH:MM", ErrInvalidSchedule)
	}

	recipients := s.Recipients[:0]
	for _, r := range s.Recipients {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	if len(recipients) == 0 {
		recipients = append(recipients, fallbackRecipient)
	}
	s.Recipients = recipients
	return nil
}
