package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records pricing computation outcomes.
type QuoteMetrics struct {
	duration      *prometheus.HistogramVec
	computations  *prometheus.CounterVec
	unfulfillable *prometheus.CounterVec
	cacheHits     *prometheus.CounterVec
}

// NewQuoteMetrics registers the pricing metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_duration_seconds",
		Help:    "Duration of pricing computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	computations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_computations_total",
		Help: "Pricing computations by resolved price model.",
	}, []string{"model"})
	unfulfillable := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_unfulfillable_total",
		Help: "Cart lines that could not be fulfilled from stock.",
	}, []string{"model"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_cache_requests_total",
		Help: "Quote cache lookups by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(duration, computations, unfulfillable, cacheHits)
	return &QuoteMetrics{
		duration:      duration,
		computations:  computations,
		unfulfillable: unfulfillable,
		cacheHits:     cacheHits,
	}
}

// ObserveDuration records how long the named operation took.
func (q *QuoteMetrics) ObserveDuration(operation string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncComputation counts one computation for the resolved model.
func (q *QuoteMetrics) IncComputation(model string) {
	if q == nil || q.computations == nil {
		return
	}
	q.computations.WithLabelValues(normalizeLabel(model)).Inc()
}

// IncUnfulfillable counts a line that stock could not cover.
func (q *QuoteMetrics) IncUnfulfillable(model string) {
	if q == nil || q.unfulfillable == nil {
		return
	}
	q.unfulfillable.WithLabelValues(normalizeLabel(model)).Inc()
}

// IncCacheHit counts a memoized quote served from cache.
func (q *QuoteMetrics) IncCacheHit() {
	if q == nil || q.cacheHits == nil {
		return
	}
	q.cacheHits.WithLabelValues("hit").Inc()
}

// IncCacheMiss counts a cache lookup that fell through to the engine.
func (q *QuoteMetrics) IncCacheMiss() {
	if q == nil || q.cacheHits == nil {
		return
	}
	q.cacheHits.WithLabelValues("miss").Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
