package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riskibarqy/champions-tracker/internal/platform/resilience"
)

const metricsNamespace = "champions_tracker"

// Metrics holds the Prometheus collectors of the API process.
type Metrics struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	settlements      prometheus.Counter
	guessesSettled   prometheus.Counter
	payoutTotal      prometheus.Counter
	eventsPublished  *prometheus.CounterVec
	eventDuration    *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
	circuitState     *prometheus.GaugeVec
}

// NewMetrics registers collectors on a private registry so tests can create
// as many instances as they need.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		requestsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		settlements: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "settlement",
			Name:      "matches_total",
			Help:      "Number of completed match settlements.",
		}),
		guessesSettled: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "settlement",
			Name:      "guesses_total",
			Help:      "Number of guesses settled.",
		}),
		payoutTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "settlement",
			Name:      "payout_total",
			Help:      "Balance credited to users by settlements.",
		}),
		eventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "events",
			Name:      "published_total",
			Help:      "Domain events published by type, driver and result.",
		}, []string{"type", "driver", "result"}),
		eventDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "events",
			Name:      "publish_duration_seconds",
			Help:      "Domain event publish duration in seconds.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"driver"}),
		cacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Read-through cache lookups by cache and result.",
		}, []string{"cache", "result"}),
		circuitState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: "circuit",
			Name:      "state",
			Help:      "Circuit breaker state: 0 closed, 1 half-open, 2 open.",
		}, []string{"name"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RequestStarted() {
	m.requestsInFlight.Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requestsInFlight.Dec()
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveSettlement(guessesSettled int, totalPayout int64) {
	m.settlements.Inc()
	m.guessesSettled.Add(float64(guessesSettled))
	m.payoutTotal.Add(float64(totalPayout))
}

func (m *Metrics) ObserveEventPublish(eventType, driver string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.eventsPublished.WithLabelValues(eventType, driver, result).Inc()
	m.eventDuration.WithLabelValues(driver).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveCacheLookup(name string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(name, result).Inc()
}

// ObserveCircuitState is shaped to be passed to CircuitBreaker.OnStateChange.
func (m *Metrics) ObserveCircuitState(name string, _, to resilience.CircuitState) {
	m.circuitState.WithLabelValues(name).Set(circuitStateValue(to))
}

func circuitStateValue(state resilience.CircuitState) float64 {
	switch state {
	case resilience.CircuitStateHalfOpen:
		return 1
	case resilience.CircuitStateOpen:
		return 2
	default:
		return 0
	}
}
