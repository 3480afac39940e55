package metrics

import "time"

// ObserveInvocation records one tool invocation: the status-labelled
// counter and the duration histogram.
func (m *Metrics) ObserveInvocation(tool, status string, start time.Time) {
	m.invocationsTotal.WithLabelValues(tool, status).Inc()
	m.invocationDuration.WithLabelValues(tool).Observe(time.Since(start).Seconds())
}
