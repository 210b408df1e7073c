// Package graphbuild implements GraphBuilder: it turns a chain of
// stations, their daily series and the configured peak/tolerance
// parameters into a single wavegraph.Graph.
//
// Station existence intervals can fragment the requested analysis period
// (a station may not have existed, or may have been decommissioned,
// partway through). Build partitions the period at every existence-
// interval boundary that falls inside it and runs PeakDetector/EdgeFinder
// independently over each sub-period's live stations, then merges the
// results by union of vertices and edges. This avoids a spurious "no
// continuation" artefact exactly at a station's birth or death.
package graphbuild
