package computus

import "github.com/prometheus/client_golang/prometheus"

const (
	resultHit      = "hit"
	resultMiss     = "miss"
	resultUncached = "uncached"
)

// Metrics counts Easter lookups.
type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics creates the lookup counter and registers it on reg. A nil
// registerer leaves the counter unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "libholiday",
			Subsystem: "computus",
			Name:      "lookups_total",
			Help:      "Easter date lookups by variant and cache result.",
		}, []string{"variant", "result"}),
	}
	if reg != nil {
		reg.MustRegister(m.lookups)
	}
	return m
}

func (m *Metrics) observe(variant Variant, result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(variant.String(), result).Inc()
}
