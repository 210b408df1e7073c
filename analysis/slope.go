package analysis

import "github.com/riverwatch/floodwave/wavegraph"

// SlopeStats summarises the slope of every edge in g.
func SlopeStats(g *wavegraph.Graph) Stats {
	edges := g.Edges()
	slopes := make([]float64, len(edges))
	for i, e := range edges {
		slopes[i] = e.Slope
	}
	return computeStats(slopes)
}
