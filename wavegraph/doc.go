// Package wavegraph is the directed-graph engine the rest of the module is
// built on: vertices are (station, date) pairs, edges are peak-to-peak
// links annotated with a slope. It is deliberately narrower than a general
// graph library — always directed, never multi-edge, never a self-loop —
// because a flood-wave graph is acyclic by construction (every edge
// crosses a strict river-km decrease) and admits at most one edge between
// any two vertices.
//
// Graph uses two independent sync.RWMutex locks, one for the vertex
// catalog and one for edges and adjacency, so read-only analytic queries
// can run concurrently against a graph that is immutable once built.
// Vertices() and Edges() always return their results sorted, so any
// algorithm built on top of them is reproducible given the same inputs.
package wavegraph
