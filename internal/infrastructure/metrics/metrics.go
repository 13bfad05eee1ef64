package metrics

import (
	"context"
	"strconv"
	"time"

	"torchline_portal/internal/domain/entities"
	"torchline_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the service collectors on a dedicated registry.
type Metrics struct {
	Registry *prometheus.Registry

	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	storeCalls    *prometheus.CounterVec
	storeDuration *prometheus.HistogramVec
	decisions     *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "torchline",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "torchline",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		storeCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "torchline",
			Name:      "store_calls_total",
			Help:      "Document store calls by operation and outcome.",
		}, []string{"op", "outcome"}),
		storeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "torchline",
			Name:      "store_call_duration_seconds",
			Help:      "Document store call latency by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "torchline",
			Name:      "quote_decisions_total",
			Help:      "Recorded quote decisions by status.",
		}, []string{"status"}),
	}
	reg.MustRegister(
		m.httpRequests, m.httpDuration, m.storeCalls, m.storeDuration, m.decisions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}

// Middleware records request count and latency per matched route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

// ObserveDecision counts a recorded approve/reject decision.
func (m *Metrics) ObserveDecision(status entities.QuoteStatus) {
	m.decisions.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) observeStore(op string, start time.Time, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.storeCalls.WithLabelValues(op, outcome).Inc()
	m.storeDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// InstrumentedStore wraps a document store and records every call.
type InstrumentedStore struct {
	next    interfaces.IDocumentStore
	metrics *Metrics
}

var _ interfaces.IDocumentStore = (*InstrumentedStore)(nil)

func NewInstrumentedStore(next interfaces.IDocumentStore, m *Metrics) *InstrumentedStore {
	return &InstrumentedStore{next: next, metrics: m}
}

func (s *InstrumentedStore) Create(ctx context.Context, owner string, collection string, data any, tags []string) (entities.Document, error) {
	start := time.Now()
	doc, err := s.next.Create(ctx, owner, collection, data, tags)
	s.metrics.observeStore("create", start, err)
	return doc, err
}

func (s *InstrumentedStore) Read(ctx context.Context, owner string, query entities.ReadQuery) ([]entities.Document, error) {
	start := time.Now()
	docs, err := s.next.Read(ctx, owner, query)
	s.metrics.observeStore("read", start, err)
	return docs, err
}

func (s *InstrumentedStore) Update(ctx context.Context, owner string, id string, data any, tags []string, incrementVersion bool) (entities.Document, error) {
	start := time.Now()
	doc, err := s.next.Update(ctx, owner, id, data, tags, incrementVersion)
	s.metrics.observeStore("update", start, err)
	return doc, err
}

func (s *InstrumentedStore) Delete(ctx context.Context, owner string, id string, hardDelete bool) error {
	start := time.Now()
	err := s.next.Delete(ctx, owner, id, hardDelete)
	s.metrics.observeStore("delete", start, err)
	return err
}

func (s *InstrumentedStore) Collections(ctx context.Context, owner string) ([]entities.CollectionInfo, error) {
	start := time.Now()
	cols, err := s.next.Collections(ctx, owner)
	s.metrics.observeStore("collections", start, err)
	return cols, err
}

func (s *InstrumentedStore) Stats(ctx context.Context, owner string) (entities.StoreStats, error) {
	start := time.Now()
	stats, err := s.next.Stats(ctx, owner)
	s.metrics.observeStore("stats", start, err)
	return stats, err
}
