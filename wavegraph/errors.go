package wavegraph

import "errors"

var (
	// ErrUnknownStation indicates a vertex or edge referenced a station
	// index outside the graph's station registry.
	ErrUnknownStation = errors.New("wavegraph: unknown station index")

	// ErrVertexNotFound indicates an operation referenced a non-existent
	// vertex.
	ErrVertexNotFound = errors.New("wavegraph: vertex not found")

	// ErrVertexExists indicates AddVertex was called for an ID already
	// present with a different Peak payload; re-adding an identical vertex
	// is a no-op, but a conflicting payload is a programmer error.
	ErrVertexExists = errors.New("wavegraph: vertex already exists with different payload")

	// ErrSelfLoop indicates an edge's From and To are the same vertex, which
	// a flood-wave graph never contains (edges always cross a river-km
	// decrease).
	ErrSelfLoop = errors.New("wavegraph: self-loop not allowed")

	// ErrDuplicateEdge indicates an edge already exists between the given
	// From and To; the graph allows at most one edge per ordered pair.
	ErrDuplicateEdge = errors.New("wavegraph: duplicate edge not allowed")
)
