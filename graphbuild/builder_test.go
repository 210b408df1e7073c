package graphbuild_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverwatch/floodwave/config"
	"github.com/riverwatch/floodwave/graphbuild"
	"github.com/riverwatch/floodwave/station"
)

func mkStation(id string, rkm float64, start, end string) station.Station {
	return station.Station{
		ID:             id,
		RiverKM:        rkm,
		LevelThreshold: 1e9, // keep every peak "low" unless a test overrides it
		Existence: station.Interval{
			Start: station.MustParseDate(start),
			End:   station.MustParseDate(end),
		},
	}
}

func mkSeries(stationID string, base station.Date, levels []float64) *station.Series {
	samples := make([]station.Sample, len(levels))
	for i, lvl := range levels {
		samples[i] = station.Sample{Date: base.AddDays(i), Level: lvl, Valid: true}
	}
	return station.NewSeries(stationID, samples)
}

func TestBuild_TwoStationBranching(t *testing.T) {
	a := mkStation("A", 100, "1999-01-01", "2001-01-01")
	b := mkStation("B", 80, "1999-01-01", "2001-01-01")
	ol, err := station.NewOrderedList([]station.Station{a, b})
	require.NoError(t, err)

	base := station.MustParseDate("2000-01-05")
	series := map[string]*station.Series{
		"A": mkSeries("A", base, []float64{1, 2, 3, 10, 3, 2, 1}),
		"B": mkSeries("B", base, []float64{1, 2, 3, 30, 30, 30, 2, 1}),
	}

	cfg := config.Config{
		WindowRadius: 2,
		Tolerances: map[string]config.Tolerance{
			"A": {Backward: 0, Forward: 2},
		},
		StartDate: "2000-01-01",
		EndDate:   "2000-02-01",
	}

	g, err := graphbuild.Build(ol, series, cfg, graphbuild.WithPeakOptions())
	require.NoError(t, err)
	assert.Greater(t, g.EdgeCount(), 0)
	assert.Greater(t, g.VertexCount(), 0)
}

func TestBuild_StationDeathFragmentsPeriod(t *testing.T) {
	// B dies mid-period; graph still builds without error and only
	// produces edges while both stations are live.
	a := mkStation("A", 100, "2000-01-01", "2000-12-31")
	b := mkStation("B", 80, "2000-01-01", "2000-01-10")
	ol, err := station.NewOrderedList([]station.Station{a, b})
	require.NoError(t, err)

	base := station.MustParseDate("2000-01-01")
	series := map[string]*station.Series{
		"A": mkSeries("A", base, []float64{1, 2, 3, 10, 3, 2, 1, 2, 3, 10, 3, 2, 1, 2, 3, 10, 3, 2, 1, 2}),
		"B": mkSeries("B", base, []float64{1, 2, 3, 30, 3, 2, 1, 2, 3, 4}),
	}

	cfg := config.Config{
		WindowRadius: 2,
		Tolerances: map[string]config.Tolerance{
			"A": {Backward: 1, Forward: 1},
		},
		StartDate: "2000-01-01",
		EndDate:   "2000-01-20",
	}

	g, err := graphbuild.Build(ol, series, cfg)
	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestBuild_MissingToleranceIsError(t *testing.T) {
	a := mkStation("A", 100, "2000-01-01", "2000-12-31")
	b := mkStation("B", 80, "2000-01-01", "2000-12-31")
	ol, err := station.NewOrderedList([]station.Station{a, b})
	require.NoError(t, err)

	cfg := config.Config{
		WindowRadius: 2,
		Tolerances:   map[string]config.Tolerance{},
		StartDate:    "2000-01-01",
		EndDate:      "2000-01-10",
	}

	_, err = graphbuild.Build(ol, map[string]*station.Series{}, cfg)
	require.Error(t, err)
}
