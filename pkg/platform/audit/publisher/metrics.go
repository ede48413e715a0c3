package publisher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/kkutopiaa/tdd-restful-service/pkg/platform/audit"
)

// Metrics counts audit events. A nil *Metrics records nothing.
type Metrics struct {
	Emitted         *prometheus.CounterVec
	Dropped         prometheus.Counter
	PersistFailures prometheus.Counter
}

// NewMetrics registers the audit metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Emitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "restful_audit_events_total",
			Help: "Total audit events persisted by action",
		}, []string{"action"}),
		Dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "restful_audit_events_dropped_total",
			Help: "Total audit events dropped because the buffer was full",
		}),
		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "restful_audit_persist_failures_total",
			Help: "Total audit events the store failed to persist",
		}),
	}
}

func (m *Metrics) incEmitted(action audit.Action) {
	if m != nil {
		m.Emitted.WithLabelValues(string(action)).Inc()
	}
}

func (m *Metrics) incDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

func (m *Metrics) incPersistFailures() {
	if m != nil {
		m.PersistFailures.Inc()
	}
}
