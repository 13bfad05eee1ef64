package entities

import "time"

// QuoteStatus represents the lifecycle of a quote request.
//
// Domain notes:
//   - Quotes are created as pending by the Contact form.
//   - Only the approval workflow moves a quote to approved or rejected.
//   - No transition guard exists: a decided quote may be decided again.
type QuoteStatus string

const (
	QuoteStatusPending  QuoteStatus = "pending"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// ServiceDetails carries the optional structured shipment info of a quote.
// Numeric fields are pointers because the form leaves them unset.
type ServiceDetails struct {
	PickupLocation   string   `json:"pickupLocation,omitempty"`
	DeliveryLocation string   `json:"deliveryLocation,omitempty"`
	CubicFeet        *float64 `json:"cubicFeet,omitempty"`
	PalletCount      *float64 `json:"palletCount,omitempty"`
	PalletDimensions string   `json:"palletDimensions,omitempty"`
	Weight           *float64 `json:"weight,omitempty"`
	SpaceInTruck     string   `json:"spaceInTruck,omitempty"`
	Timeline         string   `json:"timeline,omitempty"`
}

type FileAttachment struct {
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Quote is a customer's freight-service request stored in the
// "quote_requests" collection of the document store.
type Quote struct {
	ID              string           `json:"-"`
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	Company         string           `json:"company"`
	Service         ServiceType      `json:"service"`
	Message         string           `json:"message"`
	ServiceDetails  *ServiceDetails  `json:"serviceDetails,omitempty"`
	Attachments     []FileAttachment `json:"attachments,omitempty"`
	Status          QuoteStatus      `json:"status"`
	SubmittedAt     string           `json:"submittedAt"`
	ApprovedAt      string           `json:"approvedAt,omitempty"`
	RejectedAt      string           `json:"rejectedAt,omitempty"`
	RejectionReason string           `json:"rejectionReason,omitempty"`
	Version         int              `json:"-"`
}
