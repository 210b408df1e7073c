package analysis

import (
	"fmt"

	"github.com/riverwatch/floodwave/selector"
	"github.com/riverwatch/floodwave/wave"
	"github.com/riverwatch/floodwave/wavegraph"
)

// fullWaves returns the collapsed or expanded waves of
// select_full_from_start_to_end(g, startID, endID) whose first vertex is
// at startID and whose last vertex is at endID — the set count_waves,
// propagation_time and propagation_time_weighted all share.
func fullWaves(g *wavegraph.Graph, startID, endID string, collapsed bool) ([]wave.FloodWave, error) {
	startIdx, ok := g.StationIndex(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingStation, startID)
	}
	endIdx, ok := g.StationIndex(endID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingStation, endID)
	}

	sub, err := selector.SelectFullFromStartToEnd(g, startID, endID)
	if err != nil {
		return nil, err
	}

	var out []wave.FloodWave
	for _, w := range wave.Extract(sub, collapsed) {
		if w.Start().Station == startIdx && w.End().Station == endIdx {
			out = append(out, w)
		}
	}
	return out, nil
}

// CountWaves returns the number of equivalence-collapsed waves running
// from startID to endID exactly.
func CountWaves(g *wavegraph.Graph, startID, endID string) (int, error) {
	waves, err := fullWaves(g, startID, endID, true)
	if err != nil {
		return 0, err
	}
	return len(waves), nil
}

// CountUnfinishedWaves returns the number of collapsed waves in
// select_only_in_interval(g, startID, endID) that touch startID's station
// but never reach endID's station.
func CountUnfinishedWaves(g *wavegraph.Graph, startID, endID string) (int, error) {
	startIdx, ok := g.StationIndex(startID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingStation, startID)
	}
	endIdx, ok := g.StationIndex(endID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingStation, endID)
	}

	sub, err := selector.SelectOnlyInInterval(g, startID, endID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, w := range wave.Extract(sub, true) {
		touchesStart, reachesEnd := false, false
		for _, v := range w.Vertices {
			if v.Station == startIdx {
				touchesStart = true
			}
			if v.Station == endIdx {
				reachesEnd = true
			}
		}
		if touchesStart && !reachesEnd {
			count++
		}
	}
	return count, nil
}
