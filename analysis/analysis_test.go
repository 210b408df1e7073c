package analysis_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverwatch/floodwave/analysis"
	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wavegraph"
)

func mkOrderedList(t *testing.T, ids []string, rkms []float64) *station.OrderedList {
	t.Helper()
	stations := make([]station.Station, len(ids))
	for i, id := range ids {
		stations[i] = station.Station{
			ID:      id,
			RiverKM: rkms[i],
			Existence: station.Interval{
				Start: station.MustParseDate("1990-01-01"),
				End:   station.MustParseDate("2100-01-01"),
			},
		}
	}
	ol, err := station.NewOrderedList(stations)
	require.NoError(t, err)
	return ol
}

func addV(t *testing.T, g *wavegraph.Graph, sid string, day int, class peak.Class) wavegraph.VertexID {
	t.Helper()
	idx, ok := g.StationIndex(sid)
	require.True(t, ok)
	d := station.MustParseDate("2000-01-01").AddDays(day)
	id := wavegraph.VertexID{Station: idx, Day: d.DayOffset()}
	require.NoError(t, g.AddVertex(wavegraph.Vertex{ID: id, Peak: peak.Peak{Station: sid, Date: d, Class: class}}))
	return id
}

func TestCountWaves_UnfinishedScenario(t *testing.T) {
	// S5: Stations A,B,C. Edges A/1->B/2 only.
	g := wavegraph.NewGraph([]string{"A", "B", "C"})
	a1 := addV(t, g, "A", 1, peak.Low)
	b2 := addV(t, g, "B", 2, peak.Low)
	addV(t, g, "C", 3, peak.Low) // isolated, unrelated
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b2}))

	n, err := analysis.CountWaves(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	unfinished, err := analysis.CountUnfinishedWaves(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, unfinished)
}

func TestBuildFloodMap(t *testing.T) {
	// S6-style: section [A,C] has one (start,end) pair joined by 3 shortest
	// paths through three alternate B vertices; section [C,D] has none.
	g := wavegraph.NewGraph([]string{"A", "B", "C", "D"})
	a1 := addV(t, g, "A", 1, peak.Low)
	b2 := addV(t, g, "B", 2, peak.Low)
	b3 := addV(t, g, "B", 3, peak.Low)
	b4 := addV(t, g, "B", 4, peak.Low)
	c5 := addV(t, g, "C", 5, peak.Low)
	addV(t, g, "D", 6, peak.Low) // unreachable from C

	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b2}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b3}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b4}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: b2, To: c5}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: b3, To: c5}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: b4, To: c5}))

	fm, err := analysis.BuildFloodMap(g, []string{"A", "C", "D"})
	require.NoError(t, err)
	require.Len(t, fm.Edges, 1)
	assert.Equal(t, a1, fm.Edges[0].From)
	assert.Equal(t, c5, fm.Edges[0].To)
	assert.Equal(t, 3, fm.Edges[0].Weight)
}

func TestVelocity_ZeroDaysUsesRawDistance(t *testing.T) {
	ol := mkOrderedList(t, []string{"A", "B"}, []float64{100, 80})
	g := wavegraph.NewGraph([]string{"A", "B"})
	a1 := addV(t, g, "A", 1, peak.Low)
	b1 := addV(t, g, "B", 1, peak.Low) // same day
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a1, To: b1}))

	_, stats := analysis.Velocities(g, ol, true)
	require.Equal(t, 1, stats.N)
	assert.InDelta(t, 20.0, stats.Mean, 1e-9)
}

func TestSlopeStats_Empty(t *testing.T) {
	g := wavegraph.NewGraph([]string{"A"})
	stats := analysis.SlopeStats(g)
	assert.Equal(t, 0, stats.N)
	assert.True(t, math.IsNaN(stats.Mean))
}

func TestYearlyAggregates_SplitsByWaveYear(t *testing.T) {
	ol := mkOrderedList(t, []string{"A", "B"}, []float64{100, 80})
	g := wavegraph.NewGraph([]string{"A", "B"})

	aIdx, _ := g.StationIndex("A")
	bIdx, _ := g.StationIndex("B")
	d1999 := station.MustParseDate("1999-12-31")
	d2000 := station.MustParseDate("2000-01-01")
	a := wavegraph.VertexID{Station: aIdx, Day: d1999.DayOffset()}
	b := wavegraph.VertexID{Station: bIdx, Day: d2000.DayOffset()}
	require.NoError(t, g.AddVertex(wavegraph.Vertex{ID: a, Peak: peak.Peak{Station: "A", Date: d1999}}))
	require.NoError(t, g.AddVertex(wavegraph.Vertex{ID: b, Peak: peak.Peak{Station: "B", Date: d2000}}))
	require.NoError(t, g.AddEdge(wavegraph.Edge{From: a, To: b}))

	stats, err := analysis.YearlyAggregates(context.Background(), g, ol, 1999, 2000)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, 1, stats[0].WaveCount) // 1999: boundary wave attributed here
	assert.Equal(t, 0, stats[1].WaveCount) // 2000: not double-counted
}
