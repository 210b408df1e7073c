package wireformat

import (
	"encoding/json"
	"fmt"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wavegraph"
)

// nodeLinkGraph mirrors the shape networkx's json_graph.node_link_data /
// node_link_graph produce: a flat directed/multigraph flag pair plus
// separate node and link lists. Nodes carry enough of the underlying Peak
// to reconstruct a Vertex without a second lookup; links carry the slope.
type nodeLinkGraph struct {
	Directed   bool              `json:"directed"`
	Multigraph bool              `json:"multigraph"`
	Graph      map[string]string `json:"graph"`
	Nodes      []nodeLinkNode    `json:"nodes"`
	Links      []nodeLinkLink    `json:"links"`
}

type nodeLinkNode struct {
	ID      string  `json:"id"`
	Station string  `json:"station"`
	Date    string  `json:"date"`
	Level   float64 `json:"level"`
	Class   string  `json:"class"`
}

type nodeLinkLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Slope  float64 `json:"slope"`
}

// EncodeGraph renders g as node-link JSON. Vertices and edges are sorted
// (g.Vertices()/g.Edges() already guarantee this) so the same graph always
// encodes to byte-identical output.
func EncodeGraph(g *wavegraph.Graph) ([]byte, error) {
	nlg := nodeLinkGraph{
		Directed:   true,
		Multigraph: false,
		Graph:      map[string]string{},
	}

	for _, v := range g.Vertices() {
		nlg.Nodes = append(nlg.Nodes, nodeLinkNode{
			ID:      g.Label(v.ID),
			Station: v.Peak.Station,
			Date:    v.Peak.Date.String(),
			Level:   v.Peak.Level,
			Class:   v.Peak.Class.String(),
		})
	}
	for _, e := range g.Edges() {
		nlg.Links = append(nlg.Links, nodeLinkLink{
			Source: g.Label(e.From),
			Target: g.Label(e.To),
			Slope:  e.Slope,
		})
	}

	return json.MarshalIndent(nlg, "", "  ")
}

// DecodeGraph parses node-link JSON back into a Graph whose station
// registry is stationIDs, in the caller's chosen order (ordinarily the
// same station.OrderedList order used to build the original graph — the
// wire format itself does not carry registry order, only station IDs).
func DecodeGraph(data []byte, stationIDs []string) (*wavegraph.Graph, error) {
	var nlg nodeLinkGraph
	if err := json.Unmarshal(data, &nlg); err != nil {
		return nil, fmt.Errorf("wireformat: decode graph: %w", err)
	}

	g := wavegraph.NewGraph(stationIDs)

	byLabel := make(map[string]wavegraph.VertexID, len(nlg.Nodes))
	for _, n := range nlg.Nodes {
		idx, ok := g.StationIndex(n.Station)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownStation, n.Station)
		}
		d, err := station.ParseDate(n.Date)
		if err != nil {
			return nil, fmt.Errorf("wireformat: decode graph: %w", err)
		}
		class, err := parseClass(n.Class)
		if err != nil {
			return nil, err
		}

		id := wavegraph.VertexID{Station: idx, Day: d.DayOffset()}
		v := wavegraph.Vertex{
			ID: id,
			Peak: peak.Peak{
				Station: n.Station,
				Date:    d,
				Level:   n.Level,
				Class:   class,
			},
		}
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("wireformat: decode graph: %w", err)
		}
		byLabel[n.ID] = id
	}

	for _, l := range nlg.Links {
		from, ok := byLabel[l.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge source %q", ErrMalformedRecord, l.Source)
		}
		to, ok := byLabel[l.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge target %q", ErrMalformedRecord, l.Target)
		}
		if err := g.AddEdge(wavegraph.Edge{From: from, To: to, Slope: l.Slope}); err != nil {
			return nil, fmt.Errorf("wireformat: decode graph: %w", err)
		}
	}

	return g, nil
}

func parseClass(s string) (peak.Class, error) {
	switch s {
	case "low":
		return peak.Low, nil
	case "high":
		return peak.High, nil
	default:
		return 0, fmt.Errorf("%w: class %q", ErrMalformedRecord, s)
	}
}
