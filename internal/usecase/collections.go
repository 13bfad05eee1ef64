package usecase

import (
	"encoding/json"
	"fmt"

	"torchline_portal/internal/domain/entities"
)

// Remote store collections used by the portal.
const (
	CollectionUsers              = "users"
	CollectionServices           = "services"
	CollectionShipments          = "shipments"
	CollectionQuoteRequests      = "quote_requests"
	CollectionQuoteApprovals     = "quote_approvals"
	CollectionEmailNotifications = "email_notifications"
	CollectionVendorOrders       = "vendor_orders"
	CollectionShipmentTracking   = "shipment_tracking"
	CollectionMessages           = "messages"
	CollectionFileMetadata       = "file_metadata"
	CollectionReports            = "reports"
	CollectionScheduledReports   = "scheduled_reports"
)

// DefaultActor is used when a workflow runs without a session user.
const DefaultActor = "admin@torchlinegroup.com"

func decodeDocument[T any](doc entities.Document) (T, error) {
	var out T
	if len(doc.Data) == 0 {
		return out, fmt.Errorf("document %s has no data", doc.ID)
	}
	if err := json.Unmarshal(doc.Data, &out); err != nil {
		return out, fmt.Errorf("decode document %s: %w", doc.ID, err)
	}
	return out, nil
}

func toQuote(doc entities.Document) (entities.Quote, error) {
	q, err := decodeDocument[entities.Quote](doc)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = doc.ID
	q.Version = doc.Metadata.Version
	return q, nil
}
