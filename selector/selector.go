package selector

import (
	"fmt"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wavegraph"
)

// stationRange resolves two station IDs to an inclusive [lo,hi] pair of
// registry indices, swapping them if given in upstream/downstream order
// reversed from what the caller expects river-km to imply.
func stationRange(g *wavegraph.Graph, startID, endID string) (lo, hi int32, err error) {
	s, ok := g.StationIndex(startID)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownStation, startID)
	}
	e, ok := g.StationIndex(endID)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownStation, endID)
	}
	if s > e {
		s, e = e, s
	}
	return s, e, nil
}

// keepComponentsWhere keeps every vertex in every weakly-connected
// component for which pred reports true for at least one of its vertices.
func keepComponentsWhere(g *wavegraph.Graph, pred func(wavegraph.VertexID) bool) *wavegraph.Graph {
	keep := make(map[wavegraph.VertexID]bool)
	for _, comp := range g.WeaklyConnectedComponents() {
		matched := false
		for _, v := range comp.Vertices {
			if pred(v) {
				matched = true
				break
			}
		}
		if matched {
			for _, v := range comp.Vertices {
				keep[v] = true
			}
		}
	}
	return g.InducedSubgraph(func(id wavegraph.VertexID) bool { return keep[id] })
}

// SelectByStation keeps every weakly-connected component containing at
// least one vertex at station stationID.
func SelectByStation(g *wavegraph.Graph, stationID string) (*wavegraph.Graph, error) {
	idx, ok := g.StationIndex(stationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, stationID)
	}
	return keepComponentsWhere(g, func(id wavegraph.VertexID) bool { return id.Station == idx }), nil
}

// SelectIntersectingWithInterval keeps every component containing at least
// one vertex at any station in the closed registry-index range
// [startID, endID].
func SelectIntersectingWithInterval(g *wavegraph.Graph, startID, endID string) (*wavegraph.Graph, error) {
	lo, hi, err := stationRange(g, startID, endID)
	if err != nil {
		return nil, err
	}
	return keepComponentsWhere(g, func(id wavegraph.VertexID) bool { return id.Station >= lo && id.Station <= hi }), nil
}

// SelectOnlyInInterval is SelectIntersectingWithInterval followed by
// dropping every vertex outside the station interval. Applying
// SelectOnlyInInterval to its own output is a no-op (idempotent), and
// composing it after SelectIntersectingWithInterval yields the same result
// as calling it directly.
func SelectOnlyInInterval(g *wavegraph.Graph, startID, endID string) (*wavegraph.Graph, error) {
	lo, hi, err := stationRange(g, startID, endID)
	if err != nil {
		return nil, err
	}
	intersecting, err := SelectIntersectingWithInterval(g, startID, endID)
	if err != nil {
		return nil, err
	}
	return intersecting.InducedSubgraph(func(id wavegraph.VertexID) bool {
		return id.Station >= lo && id.Station <= hi
	}), nil
}

// SelectByWaterLevel keeps every component containing at least one vertex
// at station stationID whose peak class equals class.
func SelectByWaterLevel(g *wavegraph.Graph, stationID string, class peak.Class) (*wavegraph.Graph, error) {
	idx, ok := g.StationIndex(stationID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, stationID)
	}
	return keepComponentsWhere(g, func(id wavegraph.VertexID) bool {
		if id.Station != idx {
			return false
		}
		v, ok := g.Vertex(id)
		return ok && v.Peak.Class == class
	}), nil
}

// SelectFullFromStartToEnd keeps every component containing at least one
// vertex at startID AND at least one vertex at endID.
func SelectFullFromStartToEnd(g *wavegraph.Graph, startID, endID string) (*wavegraph.Graph, error) {
	startIdx, ok := g.StationIndex(startID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, startID)
	}
	endIdx, ok := g.StationIndex(endID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStation, endID)
	}

	keep := make(map[wavegraph.VertexID]bool)
	for _, comp := range g.WeaklyConnectedComponents() {
		hasStart, hasEnd := false, false
		for _, v := range comp.Vertices {
			if v.Station == startIdx {
				hasStart = true
			}
			if v.Station == endIdx {
				hasEnd = true
			}
		}
		if hasStart && hasEnd {
			for _, v := range comp.Vertices {
				keep[v] = true
			}
		}
	}
	return g.InducedSubgraph(func(id wavegraph.VertexID) bool { return keep[id] }), nil
}

// SelectTimeInterval drops every vertex whose date falls outside the
// closed interval iv, operating on individual vertices rather than whole
// components.
func SelectTimeInterval(g *wavegraph.Graph, iv station.Interval) *wavegraph.Graph {
	return g.InducedSubgraph(func(id wavegraph.VertexID) bool {
		return id.Date().InRange(iv.Start, iv.End)
	})
}
