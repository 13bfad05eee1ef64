package entities

// AnalyticsSnapshot is derived from the full quote list on every request and
// is never stored canonically.
type AnalyticsSnapshot struct {
	ConversionRate     float64           `json:"conversionRate"`
	TotalQuotes        int               `json:"totalQuotes"`
	ApprovedQuotes     int               `json:"approvedQuotes"`
	RejectedQuotes     int               `json:"rejectedQuotes"`
	PendingQuotes      int               `json:"pendingQuotes"`
	AverageQuoteValue  float64           `json:"averageQuoteValue"`
	TopServices        []ServiceMetric   `json:"topServices"`
	CustomerMetrics    []CustomerMetric  `json:"customerMetrics"`
	RevenueForecasting []RevenueForecast `json:"revenueForecasting"`
}

type ServiceMetric struct {
	ServiceName  string  `json:"serviceName"`
	QuoteCount   int     `json:"quoteCount"`
	ApprovalRate float64 `json:"approvalRate"`
	AverageValue float64 `json:"averageValue"`
}

type CustomerMetric struct {
	CustomerID     string  `json:"customerId"`
	CustomerName   string  `json:"customerName"`
	TotalQuotes    int     `json:"totalQuotes"`
	ApprovedQuotes int     `json:"approvedQuotes"`
	TotalRevenue   float64 `json:"totalRevenue"`
	LastActivity   string  `json:"lastActivity"`
}

// RevenueForecast values are synthetic placeholders, not a model output.
type RevenueForecast struct {
	Month      string `json:"month"`
	Projected  int    `json:"projected"`
	Actual     int    `json:"actual"`
	Confidence int    `json:"confidence"`
}

// EmptyAnalyticsSnapshot is returned when the quote list cannot be fetched.
func EmptyAnalyticsSnapshot() AnalyticsSnapshot {
	return AnalyticsSnapshot{
		TopServices:        []ServiceMetric{},
		CustomerMetrics:    []CustomerMetric{},
		RevenueForecasting: []RevenueForecast{},
	}
}
