package wave

import "github.com/riverwatch/floodwave/wavegraph"

// FloodWave is one directed path through a flood-wave graph: a sequence
// of vertices from a source (no incoming edge) to a sink (no outgoing
// edge), each consecutive pair joined by a real edge of the graph it was
// extracted from.
type FloodWave struct {
	Vertices []wavegraph.VertexID
}

// Start returns the wave's first vertex (its source).
func (w FloodWave) Start() wavegraph.VertexID { return w.Vertices[0] }

// End returns the wave's last vertex (its sink).
func (w FloodWave) End() wavegraph.VertexID { return w.Vertices[len(w.Vertices)-1] }

// Len returns the number of vertices in the wave.
func (w FloodWave) Len() int { return len(w.Vertices) }
