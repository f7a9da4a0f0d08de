// Package metrics exposes Prometheus instrumentation for the HTTP layer and
// the donation ledger. Counters are for operations only and are never read
// back as ledger aggregates.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "stagehype"

// Metrics owns a private registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	donations     prometheus.Counter
	donatedAmount prometheus.Counter
	platformFees  prometheus.Counter

	rateLimited *prometheus.CounterVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_response_time_seconds",
				Help:      "Histogram of response times",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		donations: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_recorded_total",
			Help:      "Number of donations written to the ledger",
		}),
		donatedAmount: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_amount_total",
			Help:      "Sum of recorded donation amounts",
		}),
		platformFees: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_platform_fee_total",
			Help:      "Sum of platform fees withheld from donations",
		}),
		rateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"scope"},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one finished request. route should be the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// DonationRecorded counts a successfully stored donation.
func (m *Metrics) DonationRecorded(amount, fee decimal.Decimal) {
	m.donations.Inc()
	m.donatedAmount.Add(amount.InexactFloat64())
	m.platformFees.Add(fee.InexactFloat64())
}

// RateLimited counts a request rejected in the given limiter scope.
func (m *Metrics) RateLimited(scope string) {
	m.rateLimited.WithLabelValues(scope).Inc()
}
