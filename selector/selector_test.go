package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/selector"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wavegraph"
)

// buildChain makes a 3-station A->B->C graph with one connected wave plus
// one isolated vertex at C, for selection tests.
func buildChain(t *testing.T) *wavegraph.Graph {
	t.Helper()
	g := wavegraph.NewGraph([]string{"A", "B", "C"})
	base := station.MustParseDate("2000-01-01")

	add := func(sid string, offset int, level float64, class peak.Class) wavegraph.VertexID {
		idx, ok := g.StationIndex(sid)
		require.True(t, ok)
		d := base.AddDays(offset)
		id := wavegraph.VertexID{Station: idx, Day: d.DayOffset()}
		require.NoError(t, g.AddVertex(wavegraph.Vertex{ID: id, Peak: peak.Peak{Station: sid, Date: d, Level: level, Class: class}}))
		return id
	}

	a1 := add("A", 1, 10, peak.Low)
	b2 := add("B", 2, 40, peak.High)
	c3 := add("C", 3, 20, peak.Low)
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b2}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: b2, To: c3}))

	add("C", 20, 5, peak.Low) // isolated, unrelated component
	return g
}

func TestSelectByStation(t *testing.T) {
	g := buildChain(t)
	out, err := selector.SelectByStation(g, "B")
	require.NoError(t, err)
	assert.Equal(t, 3, out.VertexCount())
	assert.Equal(t, 2, out.EdgeCount())
}

func TestSelectIntersectingWithInterval(t *testing.T) {
	g := buildChain(t)
	out, err := selector.SelectIntersectingWithInterval(g, "A", "B")
	require.NoError(t, err)
	// The whole A-B-C component survives because it intersects [A,B].
	assert.Equal(t, 3, out.VertexCount())
}

func TestSelectOnlyInInterval_DropsOutsideVertices(t *testing.T) {
	g := buildChain(t)
	out, err := selector.SelectOnlyInInterval(g, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, out.VertexCount()) // C/3 dropped, C-isolated was never kept
	assert.Equal(t, 1, out.EdgeCount())   // only A->B survives; B->C endpoint C dropped
}

func TestSelectOnlyInInterval_IsIdempotent(t *testing.T) {
	g := buildChain(t)
	once, err := selector.SelectOnlyInInterval(g, "A", "B")
	require.NoError(t, err)
	twice, err := selector.SelectOnlyInInterval(once, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, once.VertexCount(), twice.VertexCount())
	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
}

func TestSelectOnlyInInterval_ComposesWithIntersecting(t *testing.T) {
	// select_only_in_interval == select_only_in_interval(select_intersecting_with_interval(...))
	g := buildChain(t)
	direct, err := selector.SelectOnlyInInterval(g, "A", "B")
	require.NoError(t, err)

	intersecting, err := selector.SelectIntersectingWithInterval(g, "A", "B")
	require.NoError(t, err)
	composed, err := selector.SelectOnlyInInterval(intersecting, "A", "B")
	require.NoError(t, err)

	assert.Equal(t, direct.VertexCount(), composed.VertexCount())
	assert.Equal(t, direct.EdgeCount(), composed.EdgeCount())
}

func TestSelectByWaterLevel(t *testing.T) {
	g := buildChain(t)
	out, err := selector.SelectByWaterLevel(g, "B", peak.High)
	require.NoError(t, err)
	assert.Equal(t, 3, out.VertexCount())

	none, err := selector.SelectByWaterLevel(g, "B", peak.Low)
	require.NoError(t, err)
	assert.Equal(t, 0, none.VertexCount())
}

func TestSelectFullFromStartToEnd(t *testing.T) {
	g := buildChain(t)
	out, err := selector.SelectFullFromStartToEnd(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 3, out.VertexCount())

	none, err := selector.SelectFullFromStartToEnd(g, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, 0, none.VertexCount())
}

func TestSelectTimeInterval(t *testing.T) {
	g := buildChain(t)
	iv := station.Interval{
		Start: station.MustParseDate("2000-01-01"),
		End:   station.MustParseDate("2000-01-05"),
	}
	out := selector.SelectTimeInterval(g, iv)
	assert.Equal(t, 3, out.VertexCount()) // the isolated C/20 vertex is dropped
	assert.Equal(t, 2, out.EdgeCount())
}

func TestSelectTimeInterval_IsIdempotent(t *testing.T) {
	g := buildChain(t)
	iv := station.Interval{
		Start: station.MustParseDate("2000-01-01"),
		End:   station.MustParseDate("2000-01-05"),
	}
	once := selector.SelectTimeInterval(g, iv)
	twice := selector.SelectTimeInterval(once, iv)
	assert.Equal(t, once.VertexCount(), twice.VertexCount())
	assert.Equal(t, once.EdgeCount(), twice.EdgeCount())
}
