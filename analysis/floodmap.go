package analysis

import (
	"fmt"

	"github.com/riverwatch/floodwave/wave"
	"github.com/riverwatch/floodwave/wavegraph"
)

// FloodMapEdge is one aggregated start->end pair in a FloodMap: its weight
// is the number of distinct shortest paths between the two vertices, not
// an individual peak-to-peak link.
type FloodMapEdge struct {
	From   wavegraph.VertexID
	To     wavegraph.VertexID
	Weight int
}

// FloodMap is the small weighted directed graph BuildFloodMap returns. It
// is a distinct type from wavegraph.Graph: its edges are path-count
// aggregates between section endpoints, not EdgeFinder links.
type FloodMap struct {
	Edges []FloodMapEdge
}

// BuildFloodMap aggregates, for each consecutive pair (a, b) in sections,
// every (vertex at a, vertex at b) pair connected by at least one shortest
// path into one FloodMapEdge whose weight is that path count.
func BuildFloodMap(g *wavegraph.Graph, sections []string) (FloodMap, error) {
	var fm FloodMap
	for i := 0; i+1 < len(sections); i++ {
		aIdx, ok := g.StationIndex(sections[i])
		if !ok {
			return FloodMap{}, fmt.Errorf("%w: %s", ErrMissingStation, sections[i])
		}
		bIdx, ok := g.StationIndex(sections[i+1])
		if !ok {
			return FloodMap{}, fmt.Errorf("%w: %s", ErrMissingStation, sections[i+1])
		}

		var as, bs []wavegraph.VertexID
		for _, v := range g.Vertices() {
			switch v.ID.Station {
			case aIdx:
				as = append(as, v.ID)
			case bIdx:
				bs = append(bs, v.ID)
			}
		}

		for _, va := range as {
			for _, vb := range bs {
				paths := wave.ShortestPaths(g, va, vb)
				if len(paths) == 0 {
					continue
				}
				fm.Edges = append(fm.Edges, FloodMapEdge{From: va, To: vb, Weight: len(paths)})
			}
		}
	}
	return fm, nil
}
