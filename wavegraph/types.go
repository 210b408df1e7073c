package wavegraph

import (
	"fmt"
	"sync"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
)

// VertexID packs a (station, date) pair into two int32s so it is small,
// comparable and allocation-free as a map key: Station is the vertex's
// index into the graph's station registry (not a hash of its string ID),
// Day is a day offset from station.Epoch.
type VertexID struct {
	Station int32
	Day     int32
}

// Date unpacks the Day offset back into a station.Date.
func (v VertexID) Date() station.Date { return station.FromDayOffset(v.Day) }

// Vertex is a graph node: a VertexID plus the Peak it was built from.
type Vertex struct {
	ID   VertexID
	Peak peak.Peak
}

// Edge is a directed link between two vertices, carrying the slope
// EdgeFinder computed between the peaks they represent.
type Edge struct {
	From  VertexID
	To    VertexID
	Slope float64
}

// Graph is the core in-memory flood-wave graph. It is always directed,
// never multi-edge, never self-looping: at most one Edge exists between
// any ordered pair of vertices.
//
// muVert guards the vertex catalog; muEdgeAdj guards edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	stations []string // index -> station ID, fixed at construction

	vertices map[VertexID]Vertex
	edges    map[VertexID]map[VertexID]Edge // edges[from][to]
	inbound  map[VertexID]map[VertexID]struct{}
}

// NewGraph creates an empty Graph whose station registry is the given
// ordered list of station IDs. The registry never changes after
// construction; VertexID.Station indexes into it.
func NewGraph(stationIDs []string) *Graph {
	stations := make([]string, len(stationIDs))
	copy(stations, stationIDs)
	return &Graph{
		stations: stations,
		vertices: make(map[VertexID]Vertex),
		edges:    make(map[VertexID]map[VertexID]Edge),
		inbound:  make(map[VertexID]map[VertexID]struct{}),
	}
}

// StationID resolves a vertex's packed station index back to its string
// ID, or ErrUnknownStation if idx is out of range.
func (g *Graph) StationID(idx int32) (string, error) {
	if idx < 0 || int(idx) >= len(g.stations) {
		return "", fmt.Errorf("%w: %d", ErrUnknownStation, idx)
	}
	return g.stations[idx], nil
}

// Label renders a vertex ID as "<station-id>@YYYY-MM-DD" for logs and wire
// format. It falls back to the numeric index if the graph's registry
// somehow does not cover it, rather than panicking on a display path.
func (g *Graph) Label(id VertexID) string {
	sid, err := g.StationID(id.Station)
	if err != nil {
		sid = fmt.Sprintf("#%d", id.Station)
	}
	return fmt.Sprintf("%s@%s", sid, id.Date())
}

// StationIndex returns the registry index of stationID, or false if it is
// not part of this graph's registry.
func (g *Graph) StationIndex(stationID string) (int32, bool) {
	for i, s := range g.stations {
		if s == stationID {
			return int32(i), true
		}
	}
	return 0, false
}

// Stations returns a copy of the graph's station registry, index order
// preserved, for callers that need to reconstruct an equivalent Graph
// (e.g. wireformat decoding).
func (g *Graph) Stations() []string {
	out := make([]string, len(g.stations))
	copy(out, g.stations)
	return out
}
