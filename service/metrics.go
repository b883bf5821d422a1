package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry operation labels.
const (
	operationLookup   = "lookup"
	operationRegister = "register"
	outcomeOK         = "ok"
)

// RegistryMetrics counts registry operations by operation and outcome. The outcome is "ok" or the
// error code of the failure.
type RegistryMetrics struct {
	operations *prometheus.CounterVec
}

// NewRegistryMetrics creates the registry counters and registers them with reg.
func NewRegistryMetrics(reg prometheus.Registerer) *RegistryMetrics {
	m := &RegistryMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "discovery",
			Subsystem: "registry",
			Name:      "operations_total",
			Help:      "Registry lookups and registrations by outcome.",
		}, []string{"operation", "outcome"}),
	}
	reg.MustRegister(m.operations)
	return m
}

func (m *RegistryMetrics) observe(operation string, err error) {
	if m == nil {
		return
	}
	outcome := outcomeOK
	if err != nil {
		outcome = ToErrorCode(err)
		if outcome == "" {
			outcome = ErrInternalServerError
		}
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}
