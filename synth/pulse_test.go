package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/synth"
)

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	a, err := synth.Generate(start, 30, 42, synth.WithNoise(5))
	require.NoError(t, err)
	b, err := synth.Generate(start, 30, 42, synth.WithNoise(5))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_DifferentSeedsDiverge(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	a, err := synth.Generate(start, 30, 1, synth.WithNoise(5))
	require.NoError(t, err)
	b, err := synth.Generate(start, 30, 2, synth.WithNoise(5))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerate_TriangularPulseShape(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	samples, err := synth.Generate(start, 20, 1,
		synth.WithBaseline(100),
		synth.WithAmplitude(50),
		synth.WithOnset(5),
		synth.WithWidth(10),
		synth.WithTriangular(),
	)
	require.NoError(t, err)

	// Outside the pulse window, level is exactly the baseline.
	assert.InDelta(t, 100.0, samples[0].Level, 1e-9)
	assert.InDelta(t, 100.0, samples[19].Level, 1e-9)
	// Near the center of the window, level should approach baseline+amplitude.
	assert.Greater(t, samples[10].Level, samples[5].Level)
}

func TestGenerate_RectangularPulseIsFlatTopped(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	samples, err := synth.Generate(start, 10, 1,
		synth.WithBaseline(100),
		synth.WithAmplitude(50),
		synth.WithOnset(2),
		synth.WithWidth(4),
		synth.WithDuty(1.0),
		synth.WithRectangular(),
	)
	require.NoError(t, err)
	for i := 2; i < 6; i++ {
		assert.InDelta(t, 150.0, samples[i].Level, 1e-9)
	}
	assert.InDelta(t, 100.0, samples[0].Level, 1e-9)
	assert.InDelta(t, 100.0, samples[6].Level, 1e-9)
}

func TestGenerate_GapsMarkSamplesInvalid(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	samples, err := synth.Generate(start, 200, 7, synth.WithGaps(0.5))
	require.NoError(t, err)

	invalid := 0
	for _, s := range samples {
		if !s.Valid {
			invalid++
		}
	}
	assert.Greater(t, invalid, 0)
	assert.Less(t, invalid, len(samples))
}

func TestGenerate_RejectsInvalidParams(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	_, err := synth.Generate(start, 10, 1, synth.WithAmplitude(-1))
	assert.ErrorIs(t, err, synth.ErrInvalidParams)

	_, err = synth.Generate(start, 0, 1)
	assert.ErrorIs(t, err, synth.ErrInvalidParams)
}

func TestChain_PropagatesWithLagAndDecay(t *testing.T) {
	start := station.MustParseDate("2020-01-01")
	stations := []synth.ChainStation{
		{ID: "A", RiverKM: 100, LagDays: 0, AmplitudeFx: 1.0},
		{ID: "B", RiverKM: 80, LagDays: 2, AmplitudeFx: 0.8},
	}
	series, err := synth.Chain(stations, start, 30, 1,
		synth.WithOnset(5), synth.WithWidth(8), synth.WithAmplitude(100))
	require.NoError(t, err)
	require.Len(t, series, 2)
	require.Contains(t, series, "A")
	require.Contains(t, series, "B")

	peakA, peakB := -1, -1
	best := -1.0
	for i, s := range series["A"] {
		if s.Level > best {
			best = s.Level
			peakA = i
		}
	}
	best = -1.0
	for i, s := range series["B"] {
		if s.Level > best {
			best = s.Level
			peakB = i
		}
	}
	assert.Greater(t, peakB, peakA)
}
