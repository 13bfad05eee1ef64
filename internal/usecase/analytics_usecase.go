package usecase

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// analyticsQuoteLimit caps the single page of quotes folded into a snapshot.
const analyticsQuoteLimit = 1000

var forecastMonths = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Forecaster produces the revenue forecast series of a snapshot.
type Forecaster func() []entities.RevenueForecast

// RandomForecaster returns placeholder figures drawn from r. The series is
// not derived from quote data.
func RandomForecaster(r *rand.Rand) Forecaster {
	var mu sync.Mutex
	return func() []entities.RevenueForecast {
		mu.Lock()
		defer mu.Unlock()
		out := make([]entities.RevenueForecast, 0, len(forecastMonths))
		for _, m := range forecastMonths {
			out = append(out, entities.RevenueForecast{
				Month:      m,
				Projected:  r.Intn(50000) + 30000,
				Actual:     r.Intn(45000) + 25000,
				Confidence: r.Intn(20) + 80,
			})
		}
		return out
	}
}

type IAnalyticsUseCase interface {
	GetAnalytics(ctx context.Context, owner string) entities.AnalyticsSnapshot
}

type AnalyticsUseCase struct {
	store    interfaces.IDocumentStore
	forecast Forecaster
}

var _ IAnalyticsUseCase = (*AnalyticsUseCase)(nil)

func NewAnalyticsUseCase(store interfaces.IDocumentStore, forecast Forecaster) *AnalyticsUseCase {
	if forecast == nil {
		forecast = RandomForecaster(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &AnalyticsUseCase{store: store, forecast: forecast}
}

// GetAnalytics folds the first page of quote requests into a snapshot. A
// failed fetch yields an all-zero snapshot instead of an error.
func (u *AnalyticsUseCase) GetAnalytics(ctx context.Context, owner string) entities.AnalyticsSnapshot {
	docs, err := u.store.Read(ctx, owner, entities.ReadQuery{Collection: CollectionQuoteRequests, Limit: analyticsQuoteLimit, Skip: 0})
	if err != nil {
		log.Printf("[analytics][usecase] quote fetch failed owner=%s err=%v", owner, err)
		return entities.EmptyAnalyticsSnapshot()
	}

	quotes := make([]entities.Quote, 0, len(docs))
	for _, d := range docs {
		q, err := toQuote(d)
		if err != nil {
			log.Printf("[analytics][usecase] skipping undecodable quote doc_id=%s err=%v", d.ID, err)
			continue
		}
		quotes = append(quotes, q)
	}
	snap := AggregateQuotes(quotes, u.forecast)
	log.Printf("[analytics][usecase] snapshot total=%d approved=%d conversion=%.1f", snap.TotalQuotes, snap.ApprovedQuotes, snap.ConversionRate)
	return snap
}

type serviceAgg struct {
	count    int
	approved int
	value    decimal.Decimal
}

// AggregateQuotes computes counts, rates, per-service and per-customer
// metrics. Groups keep first-seen order. Approved quotes are valued at a flat
// 1500 regardless of their computed price.
func AggregateQuotes(quotes []entities.Quote, forecast Forecaster) entities.AnalyticsSnapshot {
	snap := entities.EmptyAnalyticsSnapshot()
	snap.TotalQuotes = len(quotes)

	approvedValue := decimal.Zero
	services := map[entities.ServiceType]*serviceAgg{}
	var serviceOrder []entities.ServiceType
	customers := map[string]*entities.CustomerMetric{}
	var customerOrder []string

	for _, q := range quotes {
		approved := q.Status == entities.QuoteStatusApproved
		switch q.Status {
		case entities.QuoteStatusApproved:
			snap.ApprovedQuotes++
			approvedValue = approvedValue.Add(decimal.NewFromInt(flatApprovedRevenue))
		case entities.QuoteStatusRejected:
			snap.RejectedQuotes++
		case entities.QuoteStatusPending:
			snap.PendingQuotes++
		}

		s, ok := services[q.Service]
		if !ok {
			s = &serviceAgg{value: decimal.Zero}
			services[q.Service] = s
			serviceOrder = append(serviceOrder, q.Service)
		}
		s.count++
		if approved {
			s.approved++
			s.value = s.value.Add(decimal.NewFromInt(flatApprovedRevenue))
		}

		c, ok := customers[q.Email]
		if !ok {
			c = &entities.CustomerMetric{CustomerID: q.Email, CustomerName: q.Name, LastActivity: q.SubmittedAt}
			customers[q.Email] = c
			customerOrder = append(customerOrder, q.Email)
		}
		c.TotalQuotes++
		if approved {
			c.ApprovedQuotes++
			c.TotalRevenue += flatApprovedRevenue
		}
		if laterActivity(q.SubmittedAt, c.LastActivity) {
			c.LastActivity = q.SubmittedAt
		}
	}

	snap.ConversionRate = percent(snap.ApprovedQuotes, snap.TotalQuotes)
	snap.AverageQuoteValue = average(approvedValue, snap.ApprovedQuotes)

	for _, tag := range serviceOrder {
		s := services[tag]
		snap.TopServices = append(snap.TopServices, entities.ServiceMetric{
			ServiceName:  string(tag),
			QuoteCount:   s.count,
			ApprovalRate: percent(s.approved, s.count),
			AverageValue: average(s.value, s.approved),
		})
	}
	for _, email := range customerOrder {
		snap.CustomerMetrics = append(snap.CustomerMetrics, *customers[email])
	}
	if forecast != nil {
		snap.RevenueForecasting = forecast()
	}
	return snap
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func average(sum decimal.Decimal, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
}

// laterActivity reports whether candidate is strictly after current. Unparseable
// timestamps never win.
func laterActivity(candidate, current string) bool {
	c, err := parseTimestamp(candidate)
	if err != nil {
		return false
	}
	cur, err := parseTimestamp(current)
	if err != nil {
		return true
	}
	return c.After(cur)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
