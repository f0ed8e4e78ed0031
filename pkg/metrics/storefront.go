package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// StorefrontMetrics records catalog, cart and HTTP activity.
type StorefrontMetrics struct {
	catalogQueries   *prometheus.CounterVec
	catalogMatches   prometheus.Histogram
	couponApplied    *prometheus.CounterVec
	couponRejections *prometheus.CounterVec
	checkouts        *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
}

// NewStorefrontMetrics registers the storefront metrics on the provided registerer.
// A nil registerer yields a no-op collector.
func NewStorefrontMetrics(reg prometheus.Registerer) *StorefrontMetrics {
	if reg == nil {
		return &StorefrontMetrics{}
	}
	catalogQueries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalog_queries_total",
		Help: "Catalog queries served, by sort key.",
	}, []string{"sort"})
	catalogMatches := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "catalog_query_matches",
		Help:    "Products matched per catalog query before pagination.",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
	})
	couponApplied := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coupon_applied_total",
		Help: "Coupons successfully applied, by code.",
	}, []string{"code"})
	couponRejections := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coupon_rejections_total",
		Help: "Coupon applications rejected, by reason.",
	}, []string{"reason"})
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_attempts_total",
		Help: "Checkout attempts, by outcome.",
	}, []string{"outcome"})
	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
	reg.MustRegister(catalogQueries, catalogMatches, couponApplied, couponRejections, checkouts, requestDuration)
	return &StorefrontMetrics{
		catalogQueries:   catalogQueries,
		catalogMatches:   catalogMatches,
		couponApplied:    couponApplied,
		couponRejections: couponRejections,
		checkouts:        checkouts,
		requestDuration:  requestDuration,
	}
}

// ObserveCatalogQuery records a served catalog query and how many products it matched.
func (m *StorefrontMetrics) ObserveCatalogQuery(sort string, matched int) {
	if m == nil || m.catalogQueries == nil {
		return
	}
	m.catalogQueries.WithLabelValues(normalizeLabel(sort)).Inc()
	m.catalogMatches.Observe(float64(matched))
}

// IncCouponApplied counts an accepted coupon.
func (m *StorefrontMetrics) IncCouponApplied(code string) {
	if m == nil || m.couponApplied == nil {
		return
	}
	m.couponApplied.WithLabelValues(normalizeLabel(code)).Inc()
}

// IncCouponRejected counts a rejected coupon by reason.
func (m *StorefrontMetrics) IncCouponRejected(reason string) {
	if m == nil || m.couponRejections == nil {
		return
	}
	m.couponRejections.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncCheckout counts a checkout attempt; outcome is "completed" or a block reason.
func (m *StorefrontMetrics) IncCheckout(outcome string) {
	if m == nil || m.checkouts == nil {
		return
	}
	m.checkouts.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// ObserveRequest records the duration of a served HTTP request.
func (m *StorefrontMetrics) ObserveRequest(method, route string, status int, duration time.Duration) {
	if m == nil || m.requestDuration == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, normalizeLabel(route), strconv.Itoa(status)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
