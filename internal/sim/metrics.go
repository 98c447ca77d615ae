package sim

import (
	"github.com/oranellis/universe-simulation/internal/stars"
)

// Metric observes each completed step. Implementations accumulate over
// the run and report a single value, and live in internal/metrics.
type Metric interface {
	Name() string
	Observe(s *stars.State)
	Value() float64
	Reset()
}

// AddMetric registers a metric observed after every Step. The initial
// state is observed immediately so drift metrics have their baseline.
func (s *Simulation) AddMetric(m Metric) {
	m.Observe(s.buf[s.front])
	s.metrics = append(s.metrics, m)
}

// Metrics returns the current value of every registered metric.
func (s *Simulation) Metrics() map[string]float64 {
	out := make(map[string]float64, len(s.metrics))
	for _, m := range s.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
