package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records resource dispatches.
type Metrics struct {
	// Dispatches by HTTP verb and response status
	Requests *prometheus.CounterVec

	// Dispatch latency by HTTP verb
	Latency *prometheus.HistogramVec

	// Requests no resource method matched
	Unmatched prometheus.Counter
}

// New creates the metrics and registers them on reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restful_dispatch_requests_total",
			Help: "Total resource dispatches by verb and status",
		}, []string{"verb", "status"}),

		Latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restful_dispatch_duration_seconds",
			Help:    "Duration of resource dispatch including response rendering",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"verb"}),

		Unmatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "restful_dispatch_unmatched_total",
			Help: "Total requests answered with 404 because nothing matched",
		}),
	}
}

// ObserveDispatch records one completed dispatch. Verbs outside the standard
// set share the "OTHER" label.
func (m *Metrics) ObserveDispatch(verb string, status int, d time.Duration) {
	if m == nil {
		return
	}
	verb = verbLabel(verb)
	m.Requests.WithLabelValues(verb, strconv.Itoa(status)).Inc()
	m.Latency.WithLabelValues(verb).Observe(d.Seconds())
}

// ObserveUnmatched counts a request no resource method matched.
func (m *Metrics) ObserveUnmatched() {
	if m == nil {
		return
	}
	m.Unmatched.Inc()
}

func verbLabel(verb string) string {
	switch verb {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions:
		return verb
	default:
		return "OTHER"
	}
}
