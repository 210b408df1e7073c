// Package wave implements WaveExtractor: it enumerates flood waves inside
// a wavegraph.Graph as shortest paths between source/sink pairs within
// each weakly-connected component.
//
// A source is a vertex with no incoming edge in the graph being searched;
// a sink has no outgoing edge. A (source, sink) pair is a candidate only
// when the source's station is strictly upstream of the sink's station —
// which, because station indices increase downstream and vertex IDs pack
// the station's registry index, reduces to comparing VertexID.Station.
//
// In collapsed mode each candidate pair contributes at most one wave: the
// lexicographically smallest (by vertex ID sequence) of its shortest
// paths, giving a single deterministic representative per equivalence
// class. Expanded mode contributes every shortest path.
package wave
