package edge

import (
	"fmt"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
)

// Find produces every Link from upstream peaks to downstream peaks at an
// adjacent station pair. upstream must be strictly upstream of downstream
// (greater river_km), matching the ordering station.OrderedList enforces
// across the whole chain.
//
// If either peak slice is empty the pair contributes no links; this is not
// an error, since a peak-less station simply breaks that leg of the graph.
func Find(upstream, downstream station.Station, upstreamPeaks, downstreamPeaks []peak.Peak, opts ...Option) ([]Link, error) {
	if !(upstream.RiverKM > downstream.RiverKM) {
		return nil, fmt.Errorf("%w: %s (%.3f) vs %s (%.3f)",
			ErrInvalidStationOrder, upstream.ID, upstream.RiverKM, downstream.ID, downstream.RiverKM)
	}
	if len(upstreamPeaks) == 0 || len(downstreamPeaks) == 0 {
		return nil, nil
	}

	cfg := newFindConfig(opts)
	rkmDelta := upstream.RiverKM - downstream.RiverKM

	var links []Link
	for _, pu := range upstreamPeaks {
		lo := pu.Date.AddDays(-cfg.tolerance.Backward)
		hi := pu.Date.AddDays(cfg.tolerance.Forward)
		for _, pv := range downstreamPeaks {
			if !pv.Date.InRange(lo, hi) {
				continue
			}
			slope := (pv.Level - pu.Level) / rkmDelta
			links = append(links, Link{From: pu, To: pv, Slope: slope})
		}
	}
	return links, nil
}
