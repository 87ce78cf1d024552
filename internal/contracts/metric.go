package contracts

import "math"

// Metric is an optional float64. A fundamental that the data source did not
// provide stays unknown instead of collapsing to zero, so missing data can
// never bias a score.
type Metric struct {
	Value float64 `json:"value"`
	Known bool    `json:"known"`
}

// Known wraps a value as a known metric. NaN and ±Inf are rejected as
// unknown so they never reach scoring arithmetic.
func Known(v float64) Metric {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Metric{}
	}
	return Metric{Value: v, Known: true}
}

// Unknown returns the missing-data marker.
func Unknown() Metric {
	return Metric{}
}

// Float returns the value and whether it is known.
func (m Metric) Float() (float64, bool) {
	return m.Value, m.Known
}

// Map applies f to a known metric and propagates unknown.
func (m Metric) Map(f func(float64) float64) Metric {
	if !m.Known {
		return Metric{}
	}
	return Known(f(m.Value))
}
