// Package metrics exposes Prometheus collectors for store round-trips,
// change-log deduplication rounds and HTTP requests.
package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kbss-cvut/termit-sub001/internal/domain"
)

const namespace = "termit"

// Metrics owns a private registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	dedupRounds   *prometheus.HistogramVec
	storeQueries  *prometheus.CounterVec
	storeDuration prometheus.Histogram
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		dedupRounds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "activity",
			Name:      "dedup_rounds",
			Help:      "Change-log read rounds needed to fill one page of unique entities.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		}, []string{"asset_type"}),
		storeQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Queries sent to the store, by outcome.",
		}, []string{"outcome"}),
		storeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Store query latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	m.registry.MustRegister(
		m.dedupRounds,
		m.storeQueries,
		m.storeDuration,
		m.httpRequests,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry backing the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveDedupRounds records how many change-log reads one page took.
func (m *Metrics) ObserveDedupRounds(assetType domain.AssetType, rounds int) {
	m.dedupRounds.WithLabelValues(assetType.String()).Observe(float64(rounds))
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ---------------------------------------------------------------------------
// pgx query tracer
// ---------------------------------------------------------------------------

type queryStartKey struct{}

// QueryTracer returns a pgx.QueryTracer that counts store round-trips.
func (m *Metrics) QueryTracer() pgx.QueryTracer {
	return &queryTracer{m: m}
}

type queryTracer struct {
	m *Metrics
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, queryStartKey{}, time.Now())
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, data pgx.TraceQueryEndData) {
	outcome := "ok"
	if data.Err != nil {
		outcome = "error"
	}
	t.m.storeQueries.WithLabelValues(outcome).Inc()

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		t.m.storeDuration.Observe(time.Since(start).Seconds())
	}
}
