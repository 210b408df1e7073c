package wavegraph

// InducedSubgraph returns a new Graph containing only the vertices for
// which keep reports true, and only edges whose endpoints are both kept.
// This is the edge rule the selector package builds its six selections on:
// an edge is kept iff both its endpoints are kept. The receiver graph is
// not mutated.
func (g *Graph) InducedSubgraph(keep func(VertexID) bool) *Graph {
	out := g.CloneEmpty()

	g.muVert.RLock()
	for id, v := range g.vertices {
		if keep(id) {
			out.vertices[id] = v
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for from, byTo := range g.edges {
		if !keep(from) {
			continue
		}
		for to, e := range byTo {
			if !keep(to) {
				continue
			}
			if out.edges[from] == nil {
				out.edges[from] = make(map[VertexID]Edge)
			}
			out.edges[from][to] = e
			if out.inbound[to] == nil {
				out.inbound[to] = make(map[VertexID]struct{})
			}
			out.inbound[to][from] = struct{}{}
		}
	}
	return out
}
