package metrics

import "time"

// Window accumulates forward-pass stats across multiple evaluations.
type Window struct {
	examples  int
	forward   time.Duration
	evals     int
	totalCost float64
	lastCost  float64
}

// Record adds a new measurement to the window.
func (w *Window) Record(examples int, forwardTime time.Duration, cost float64) {
	w.examples += examples
	w.forward += forwardTime
	w.evals++
	w.totalCost += cost
	w.lastCost = cost
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Examples: w.examples}
	if w.forward > 0 {
		snap.ExamplesPerSec = float64(w.examples) / w.forward.Seconds()
	}
	if w.evals > 0 {
		snap.AvgForwardMS = (w.forward.Seconds() * 1000) / float64(w.evals)
		snap.MeanCost = w.totalCost / float64(w.evals)
	}
	snap.LastCost = w.lastCost

	*w = Window{}
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Examples       int
	ExamplesPerSec float64
	AvgForwardMS   float64
	MeanCost       float64
	LastCost       float64
}
