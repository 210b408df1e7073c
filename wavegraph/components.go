package wavegraph

import "sort"

// Component is one weakly-connected component: the vertices that belong to
// it, sorted by (station, day).
type Component struct {
	Vertices []VertexID
}

// WeaklyConnectedComponents partitions the graph's vertices into weakly
// connected components (ignoring edge direction), using a disjoint-set
// union with path compression and union by rank. Components are returned
// sorted by their smallest member vertex, and each component's vertex list
// is itself sorted, so the result is fully deterministic.
func (g *Graph) WeaklyConnectedComponents() []Component {
	g.muVert.RLock()
	ids := make([]VertexID, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	g.muVert.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return lessVertexID(ids[i], ids[j]) })

	parent := make(map[VertexID]VertexID, len(ids))
	rank := make(map[VertexID]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}

	var find func(VertexID) VertexID
	find = func(u VertexID) VertexID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v VertexID) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	g.muEdgeAdj.RLock()
	for from, byTo := range g.edges {
		for to := range byTo {
			union(from, to)
		}
	}
	g.muEdgeAdj.RUnlock()

	groups := make(map[VertexID][]VertexID)
	for _, id := range ids {
		root := find(id)
		groups[root] = append(groups[root], id)
	}

	out := make([]Component, 0, len(groups))
	for _, members := range groups {
		sort.Slice(members, func(i, j int) bool { return lessVertexID(members[i], members[j]) })
		out = append(out, Component{Vertices: members})
	}
	sort.Slice(out, func(i, j int) bool { return lessVertexID(out[i].Vertices[0], out[j].Vertices[0]) })
	return out
}
