package entities

import "time"

// Shipment lives in the "shipments" collection and is shown on the customer
// dashboard.
type Shipment struct {
	ID                string    `json:"-"`
	TrackingNumber    string    `json:"trackingNumber"`
	CustomerEmail     string    `json:"customerEmail"`
	CustomerName      string    `json:"customerName"`
	Origin            string    `json:"origin"`
	Destination       string    `json:"destination"`
	Status            string    `json:"status"`
	Service           string    `json:"service"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
	Weight            float64   `json:"weight"`
	Dimensions        string    `json:"dimensions"`
	CreatedAt         time.Time `json:"createdAt"`
}

// VendorOrder lives in the "vendor_orders" collection and is shown on the
// vendor dashboard.
type VendorOrder struct {
	ID            string    `json:"-"`
	OrderID       string    `json:"orderId"`
	VendorEmail   string    `json:"vendorEmail"`
	VendorName    string    `json:"vendorName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type TrackingUpdate struct {
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

type ShipmentTracking struct {
	TrackingNumber    string           `json:"trackingNumber"`
	Status            string           `json:"status"`
	CurrentLocation   string           `json:"currentLocation"`
	EstimatedDelivery time.Time        `json:"estimatedDelivery"`
	Updates           []TrackingUpdate `json:"updates"`
	Realtime          bool             `json:"realtime"`
}

type Message struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	SenderName  string    `json:"senderName"`
	ReceiverID  string    `json:"receiverId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Read        bool      `json:"read"`
	Attachments []string  `json:"attachments,omitempty"`
}

type FileMetadata struct {
	ID         string     `json:"id"`
	FileName   string     `json:"fileName"`
	FileType   string     `json:"fileType"`
	FileSize   int64      `json:"fileSize"`
	FileURL    string     `json:"fileUrl"`
	Category   string     `json:"category"`
	UploadedBy string     `json:"uploadedBy"`
	UploadedAt time.Time  `json:"uploadedAt"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	Tags       []string   `json:"tags"`
	PreviewURL string     `json:"previewUrl,omitempty"`
}
