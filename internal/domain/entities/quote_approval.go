package entities

import "time"

// QuoteApproval is the log entry of one approve/reject decision, stored in
// the "quote_approvals" collection.
//
// Version is always 1: it is kept for optimistic concurrency but never
// compared on write.
type QuoteApproval struct {
	ID                 string              `json:"id"`
	QuoteID            string              `json:"quoteId"`
	Status             QuoteStatus         `json:"status"`
	ApprovedBy         string              `json:"approvedBy,omitempty"`
	ApprovedAt         *time.Time          `json:"approvedAt,omitempty"`
	RejectedBy         string              `json:"rejectedBy,omitempty"`
	RejectedAt         *time.Time          `json:"rejectedAt,omitempty"`
	RejectionReason    string              `json:"rejectionReason,omitempty"`
	Version            int                 `json:"version"`
	PriceCalculation   PriceCalculation    `json:"priceCalculation"`
	EmailNotifications []EmailNotification `json:"emailNotifications"`
}

type EmailNotification struct {
	QuoteID string    `json:"quoteId,omitempty"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	SentAt  time.Time `json:"sentAt"`
	Status  string    `json:"status"`
}

// QuoteDecision is the outcome of a workflow run. The three remote writes are
// independent, so a decision can be recorded while the quote patch or the
// notification failed.
type QuoteDecision struct {
	Approval         QuoteApproval `json:"approval"`
	QuoteUpdated     bool          `json:"quoteUpdated"`
	NotificationSent bool          `json:"notificationSent"`
}
