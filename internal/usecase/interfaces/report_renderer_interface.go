package interfaces

import (
	"time"

	"torchline_portal/internal/domain/entities"
)

// IReportRenderer serializes an analytics snapshot into a downloadable file.
type IReportRenderer interface {
	Format() entities.ReportFormat
	Render(snapshot entities.AnalyticsSnapshot, generatedAt time.Time) (entities.RenderedReport, error)
}
