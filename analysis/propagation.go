package analysis

import "github.com/riverwatch/floodwave/wavegraph"

// PropagationTime returns the mean elapsed days, over the equivalence-
// collapsed full waves from startID to endID, between a wave's start and
// end dates. By documented convention an empty wave set returns 0, not
// NaN.
func PropagationTime(g *wavegraph.Graph, startID, endID string) (float64, error) {
	waves, err := fullWaves(g, startID, endID, true)
	if err != nil {
		return 0, err
	}
	if len(waves) == 0 {
		return 0, nil
	}

	total := 0
	for _, w := range waves {
		total += w.End().Date().Sub(w.Start().Date())
	}
	return float64(total) / float64(len(waves)), nil
}

// PropagationTimeWeighted is PropagationTime computed over every shortest
// path (expanded mode) instead of one representative per pair.
func PropagationTimeWeighted(g *wavegraph.Graph, startID, endID string) (float64, error) {
	waves, err := fullWaves(g, startID, endID, false)
	if err != nil {
		return 0, err
	}
	if len(waves) == 0 {
		return 0, nil
	}

	total := 0
	for _, w := range waves {
		total += w.End().Date().Sub(w.Start().Date())
	}
	return float64(total) / float64(len(waves)), nil
}
