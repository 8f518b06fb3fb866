// Package metrics exposes Prometheus instrumentation for the verifier:
// verification verdicts, per-step outcomes, and sequence lengths.
package metrics

import (
	"github.com/aretw0/handshake/pkg/protocol"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the verifier's collectors.
type Metrics struct {
	Verifications  *prometheus.CounterVec
	Steps          *prometheus.CounterVec
	SequenceLength prometheus.Histogram
}

// New registers the collectors against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handshake",
			Name:      "verifications_total",
			Help:      "Sequence verifications by verdict.",
		}, []string{"outcome"}),
		Steps: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handshake",
			Name:      "steps_total",
			Help:      "Single transitions by result.",
		}, []string{"result"}),
		SequenceLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "handshake",
			Name:      "sequence_length",
			Help:      "Length of verified packet sequences.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16},
		}),
	}
}

// ObserveVerification records a batch verification result.
func (m *Metrics) ObserveVerification(res protocol.VerifyResult) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if res.Valid {
		outcome = "valid"
	}
	m.Verifications.WithLabelValues(outcome).Inc()
	m.SequenceLength.Observe(float64(len(res.Steps)))
}

// ObserveStep records a single-step outcome.
func (m *Metrics) ObserveStep(rec protocol.TransitionRecord) {
	if m == nil {
		return
	}
	result := "rejected"
	if rec.Accepted {
		result = "accepted"
	}
	m.Steps.WithLabelValues(result).Inc()
}
