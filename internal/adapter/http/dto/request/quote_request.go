package request

import (
	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase"
)

// QuoteRequest is the Contact form payload. Multipart submissions carry the
// same fields as form values plus "attachments" files.
type QuoteRequest struct {
	Name           string                   `json:"name" form:"name"`
	Email          string                   `json:"email" form:"email"`
	Phone          string                   `json:"phone" form:"phone"`
	Company        string                   `json:"company" form:"company"`
	Service        string                   `json:"service" form:"service"`
	Message        string                   `json:"message" form:"message"`
	ServiceDetails *entities.ServiceDetails `json:"serviceDetails" form:"-"`
}

func (r QuoteRequest) ToSubmission(files []usecase.FileUpload) usecase.QuoteSubmission {
	return usecase.QuoteSubmission{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Company:        r.Company,
		Service:        entities.ServiceType(r.Service),
		Message:        r.Message,
		ServiceDetails: r.ServiceDetails,
		Attachments:    files,
	}
}

// ApproveQuoteRequest may carry the price shown to the employee. When it is
// missing the handler prices the quote itself.
type ApproveQuoteRequest struct {
	PriceCalculation *entities.PriceCalculation `json:"priceCalculation"`
}

type RejectQuoteRequest struct {
	Reason string `json:"reason"`
}
