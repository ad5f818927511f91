package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics records catalog query activity.
type CatalogMetrics struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	results  prometheus.Histogram
}

// NewCatalogMetrics registers the catalog metrics on the provided registerer.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	if reg == nil {
		return &CatalogMetrics{}
	}
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Catalog queries executed, labeled by sort key.",
	}, []string{"sort"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalog_query_duration_seconds",
		Help:    "Duration of catalog filter+sort runs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sort"})
	results := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_results",
		Help:    "Number of products returned per catalog query.",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
	})
	reg.MustRegister(queries, duration, results)
	return &CatalogMetrics{
		queries:  queries,
		duration: duration,
		results:  results,
	}
}

// ObserveQuery records a single catalog query run.
func (c *CatalogMetrics) ObserveQuery(sort string, duration time.Duration, results int) {
	if c == nil || c.queries == nil {
		return
	}
	label := normalizeLabel(sort)
	c.queries.WithLabelValues(label).Inc()
	c.duration.WithLabelValues(label).Observe(duration.Seconds())
	c.results.Observe(float64(results))
}

// WishlistMetrics records wishlist store activity.
type WishlistMetrics struct {
	mutations *prometheus.CounterVec
	size      prometheus.Gauge
}

// NewWishlistMetrics registers the wishlist metrics on the provided registerer.
func NewWishlistMetrics(reg prometheus.Registerer) *WishlistMetrics {
	if reg == nil {
		return &WishlistMetrics{}
	}
	mutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wishlist_mutations_total",
		Help: "Wishlist mutations, labeled by operation.",
	}, []string{"op"})
	size := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "wishlist_size",
		Help: "Current number of products in the wishlist.",
	})
	reg.MustRegister(mutations, size)
	return &WishlistMetrics{
		mutations: mutations,
		size:      size,
	}
}

// IncMutation increments the mutation counter for the named operation.
func (w *WishlistMetrics) IncMutation(op string) {
	if w == nil || w.mutations == nil {
		return
	}
	w.mutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// SetSize records the wishlist size after a mutation.
func (w *WishlistMetrics) SetSize(size int) {
	if w == nil || w.size == nil {
		return
	}
	w.size.Set(float64(size))
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
