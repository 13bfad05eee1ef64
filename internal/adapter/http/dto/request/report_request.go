package request

import (
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
)

type ReportRequest struct {
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Parameters map[string]any `json:"parameters"`
	Format     string         `json:"format"`
}

func (r ReportRequest) ToUseCase(generatedBy string) usecase.ReportRequest {
	return usecase.ReportRequest{
		Name:        r.Name,
		Type:        r.Type,
		Parameters:  r.Parameters,
		GeneratedBy: generatedBy,
		Format:      entities.ReportFormat(r.Format),
	}
}

type ScheduleReportRequest struct {
	ReportRequest
	Schedule entities.ScheduleConfig `json:"schedule"`
}
