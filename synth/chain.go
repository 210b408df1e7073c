package synth

import (
	"fmt"

	"github.com/riverwatch/floodwave/station"
)

// ChainStation describes one gauging point in a synthetic river chain: its
// identity plus the propagation lag and amplitude decay its pulse carries
// relative to the chain's first station.
type ChainStation struct {
	ID          string
	RiverKM     float64
	LagDays     int     // onset delay relative to the upstream-most station
	AmplitudeFx float64 // multiplier applied to the base amplitude (1.0 = no decay)
}

// Chain generates one correlated series per station in stations, each a
// delayed, decaying copy of the same base pulse — a deterministic stand-in
// for a single flood wave propagating downstream. Stations must already be
// ordered upstream-to-downstream; Chain does not reorder or validate
// river-km monotonicity itself, leaving that to station.NewOrderedList.
//
// Complexity: O(len(stations) * n) time and memory.
func Chain(stations []ChainStation, start station.Date, n int, seed int64, opts ...Option) (map[string][]station.Sample, error) {
	out := make(map[string][]station.Sample, len(stations))
	base := newConfig(n, opts...)

	for i, cs := range stations {
		stationOpts := append([]Option{}, opts...)
		stationOpts = append(stationOpts,
			WithOnset(base.onset+cs.LagDays),
			WithAmplitude(base.amplitude*cs.AmplitudeFx),
		)
		samples, err := Generate(start, n, seed+int64(i), stationOpts...)
		if err != nil {
			return nil, fmt.Errorf("synth: chain station %s: %w", cs.ID, err)
		}
		out[cs.ID] = samples
	}
	return out, nil
}
