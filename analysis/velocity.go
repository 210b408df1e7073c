package analysis

import (
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wave"
	"github.com/riverwatch/floodwave/wavegraph"
)

// Velocity returns a wave's propagation speed: the river-km distance
// between its start and end station divided by its elapsed days. A
// same-day wave (days == 0) reports the raw distance, treated as a
// one-day upper bound rather than dividing by zero.
func Velocity(ol *station.OrderedList, w wave.FloodWave) float64 {
	startStation := ol.At(int(w.Start().Station))
	endStation := ol.At(int(w.End().Station))
	distance := startStation.RiverKM - endStation.RiverKM

	days := w.End().Date().Sub(w.Start().Date())
	if days == 0 {
		return distance
	}
	return distance / float64(days)
}

// Velocities returns the per-wave velocity for every wave g extracts
// (collapsed or expanded, across the whole graph, not restricted to one
// station pair), plus the summary Stats over that set.
func Velocities(g *wavegraph.Graph, ol *station.OrderedList, collapsed bool) ([]float64, Stats) {
	waves := wave.Extract(g, collapsed)
	out := make([]float64, len(waves))
	for i, w := range waves {
		out[i] = Velocity(ol, w)
	}
	return out, computeStats(out)
}
