package wave

import (
	"sort"

	"github.com/riverwatch/floodwave/wavegraph"
)

// Extract enumerates every flood wave in g. In collapsed mode each
// (source, sink) pair contributes at most one wave; in expanded mode it
// contributes every shortest path between them.
func Extract(g *wavegraph.Graph, collapsed bool) []FloodWave {
	var waves []FloodWave
	for _, comp := range g.WeaklyConnectedComponents() {
		sources, sinks := sourcesAndSinks(g, comp.Vertices)
		for _, s := range sources {
			for _, t := range sinks {
				if !(s.Station < t.Station) {
					continue // river_km(source) must exceed river_km(sink)
				}
				paths := shortestPaths(g, s, t, collapsed)
				for _, p := range paths {
					waves = append(waves, FloodWave{Vertices: p})
				}
			}
		}
	}
	return waves
}

func sourcesAndSinks(g *wavegraph.Graph, vertices []wavegraph.VertexID) (sources, sinks []wavegraph.VertexID) {
	for _, v := range vertices {
		in, out := g.Degree(v)
		if in == 0 {
			sources = append(sources, v)
		}
		if out == 0 {
			sinks = append(sinks, v)
		}
	}
	return sources, sinks
}

func lessVertexID(a, b wavegraph.VertexID) bool {
	if a.Station != b.Station {
		return a.Station < b.Station
	}
	return a.Day < b.Day
}

// bfsDist computes, for every vertex reachable from start by following
// neighbors(v), its hop distance from start.
func bfsDist(start wavegraph.VertexID, neighbors func(wavegraph.VertexID) []wavegraph.VertexID) map[wavegraph.VertexID]int {
	dist := map[wavegraph.VertexID]int{start: 0}
	queue := []wavegraph.VertexID{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range neighbors(u) {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist
}

// ShortestPaths returns every shortest path from s to t in g, sorted
// lexicographically by vertex-ID sequence. It is exported for callers like
// analysis.BuildFloodMap that need a shortest-path count between two
// arbitrary vertices, not just between component sources and sinks.
func ShortestPaths(g *wavegraph.Graph, s, t wavegraph.VertexID) [][]wavegraph.VertexID {
	return shortestPaths(g, s, t, false)
}

// shortestPaths returns the shortest s->t paths in g: one lexicographically
// smallest path if collapsed is true, every shortest path otherwise. Both
// are built from the same "on some shortest path" vertex classification:
// v qualifies iff dist-from-s(v) + dist-to-t(v) == total shortest length.
func shortestPaths(g *wavegraph.Graph, s, t wavegraph.VertexID, collapsed bool) [][]wavegraph.VertexID {
	distFromS := bfsDist(s, g.Neighbors)
	distToT := bfsDist(t, g.InNeighbors)

	total, ok := distFromS[t]
	if !ok {
		return nil
	}

	qualifies := func(v wavegraph.VertexID) bool {
		df, ok1 := distFromS[v]
		dt, ok2 := distToT[v]
		return ok1 && ok2 && df+dt == total
	}

	if collapsed {
		path := []wavegraph.VertexID{s}
		cur := s
		for cur != t {
			next, found := bestNextHop(g, cur, distFromS, qualifies)
			if !found {
				return nil
			}
			path = append(path, next)
			cur = next
		}
		return [][]wavegraph.VertexID{path}
	}

	return enumerateAllPaths(g, s, t, total, distFromS, qualifies)
}

// bestNextHop returns the smallest qualifying neighbour of cur one hop
// further from s, for the greedy lexicographically-smallest-path walk.
func bestNextHop(g *wavegraph.Graph, cur wavegraph.VertexID, distFromS map[wavegraph.VertexID]int, qualifies func(wavegraph.VertexID) bool) (wavegraph.VertexID, bool) {
	var best wavegraph.VertexID
	found := false
	for _, v := range g.Neighbors(cur) {
		if distFromS[v] != distFromS[cur]+1 || !qualifies(v) {
			continue
		}
		if !found || lessVertexID(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// enumerateAllPaths builds every shortest s->t path by processing vertices
// in decreasing distance-from-s order, so each vertex's path-suffixes to t
// are assembled from its already-computed successors' suffixes.
func enumerateAllPaths(g *wavegraph.Graph, s, t wavegraph.VertexID, total int, distFromS map[wavegraph.VertexID]int, qualifies func(wavegraph.VertexID) bool) [][]wavegraph.VertexID {
	var onPath []wavegraph.VertexID
	for v, d := range distFromS {
		if _, okT := distFromS[t]; okT && d <= total && qualifies(v) {
			onPath = append(onPath, v)
		}
	}
	sort.Slice(onPath, func(i, j int) bool { return distFromS[onPath[i]] > distFromS[onPath[j]] })

	suffixes := make(map[wavegraph.VertexID][][]wavegraph.VertexID, len(onPath))
	suffixes[t] = [][]wavegraph.VertexID{{t}}

	for _, v := range onPath {
		if v == t {
			continue
		}
		var vSuffixes [][]wavegraph.VertexID
		for _, w := range g.Neighbors(v) {
			if distFromS[w] != distFromS[v]+1 || !qualifies(w) {
				continue
			}
			for _, suf := range suffixes[w] {
				full := make([]wavegraph.VertexID, 0, len(suf)+1)
				full = append(full, v)
				full = append(full, suf...)
				vSuffixes = append(vSuffixes, full)
			}
		}
		if len(vSuffixes) > 0 {
			suffixes[v] = vSuffixes
		}
	}

	out := suffixes[s]
	sort.Slice(out, func(i, j int) bool { return lessPath(out[i], out[j]) })
	return out
}

func lessPath(a, b []wavegraph.VertexID) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return lessVertexID(a[i], b[i])
		}
	}
	return len(a) < len(b)
}
