package entities

import "time"

type ReportFormat string

const (
	ReportFormatPDF   ReportFormat = "pdf"
	ReportFormatExcel ReportFormat = "excel"
)

type ScheduleFrequency string

const (
	ScheduleFrequencyDaily   ScheduleFrequency = "daily"
	ScheduleFrequencyWeekly  ScheduleFrequency = "weekly"
	ScheduleFrequencyMonthly ScheduleFrequency = "monthly"
)

type ScheduleConfig struct {
	Frequency  ScheduleFrequency `json:"frequency"`
	DayOfWeek  *int              `json:"dayOfWeek,omitempty"`
	DayOfMonth *int              `json:"dayOfMonth,omitempty"`
	Time       string            `json:"time"`
	Recipients []string          `json:"recipients"`
}

// Report is a generated (or scheduled) analytics export, stored in the
// "reports" or "scheduled_reports" collection.
type Report struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Parameters     map[string]any    `json:"parameters"`
	GeneratedAt    time.Time         `json:"generatedAt"`
	GeneratedBy    string            `json:"generatedBy"`
	Format         ReportFormat      `json:"format"`
	Data           AnalyticsSnapshot `json:"data"`
	Scheduled      bool              `json:"scheduled,omitempty"`
	ScheduleConfig *ScheduleConfig   `json:"scheduleConfig,omitempty"`
}

// RenderedReport is the file produced by a report renderer.
type RenderedReport struct {
	FileName    string
	ContentType string
	Content     []byte
}
