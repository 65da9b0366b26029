package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Chat outcomes recorded by ObserveChat.
const (
	ChatOutcomeOK          = "ok"
	ChatOutcomeFallback    = "fallback"
	ChatOutcomeUpstream    = "upstream_error"
	ChatOutcomeCircuitOpen = "circuit_open"
	ChatOutcomeError       = "error"
)

// MetricsService owns the Prometheus registry and the collectors the API reports to.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	dbQueryDuration *prometheus.HistogramVec
	chatDuration    *prometheus.HistogramVec
	chatTotal       *prometheus.CounterVec
	uploadsTotal    *prometheus.CounterVec
	enrollments     *prometheus.CounterVec
	breakerState    *prometheus.GaugeVec

	cacheHitCount  uint64
	cacheMissCount uint64
}

// NewMetricsService registers the collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache lookups",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache writes",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	dbQueryDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "db_query_duration_seconds",
		Help:    "Duration of database queries",
		Buckets: prometheus.DefBuckets,
	}, []string{"query"})

	chatDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chat_upstream_duration_seconds",
		Help:    "Latency of chat completion calls",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 30},
	}, []string{"outcome"})

	chatTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_requests_total",
		Help: "Chat proxy requests by outcome",
	}, []string{"outcome"})

	uploadsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storage_uploads_total",
		Help: "Object storage uploads by bucket and result",
	}, []string{"bucket", "result"})

	enrollments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "enrollment_submissions_total",
		Help: "Payment confirmations by result",
	}, []string{"result"})

	breakerState := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "circuit_breaker_open",
		Help: "1 while the named circuit breaker is not closed",
	}, []string{"name"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheHits, cacheMisses,
		dbQueryDuration, chatDuration, chatTotal, uploadsTotal, enrollments, breakerState, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		dbQueryDuration: dbQueryDuration,
		chatDuration:    chatDuration,
		chatTotal:       chatTotal,
		uploadsTotal:    uploadsTotal,
		enrollments:     enrollments,
		breakerState:    breakerState,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records a cache lookup and refreshes the hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	total := hits + atomic.LoadUint64(&m.cacheMissCount)
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration of a cache write.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveDBQuery records database query timing under label.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
}

// ObserveChat records one chat proxy call.
func (m *MetricsService) ObserveChat(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.chatDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	m.chatTotal.WithLabelValues(outcome).Inc()
}

// RecordUpload counts an object storage upload.
func (m *MetricsService) RecordUpload(bucket string, ok bool) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(bucket, resultLabel(ok)).Inc()
}

// RecordEnrollment counts a payment confirmation attempt.
func (m *MetricsService) RecordEnrollment(ok bool) {
	if m == nil {
		return
	}
	m.enrollments.WithLabelValues(resultLabel(ok)).Inc()
}

// SetBreakerState publishes a circuit breaker transition.
func (m *MetricsService) SetBreakerState(name, state string) {
	if m == nil {
		return
	}
	value := 0.0
	if state != "closed" {
		value = 1
	}
	m.breakerState.WithLabelValues(name).Set(value)
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}
