package analysis

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/wave"
	"github.com/riverwatch/floodwave/wavegraph"
)

// YearStat is one year's worth of aggregated analytics.
type YearStat struct {
	Year          int
	WaveCount     int
	VelocityStats Stats
	SlopeStats    Stats
	HighRatio     float64 // fraction of the year's vertices classed high
}

// yearOf assigns a wave to the single year it belongs to under the
// cleaning rule: a wave is "of year y" iff none of its vertex dates lie in
// y-1 and not all of them lie in y+1. Checking candidate years in
// ascending order and returning the first match attributes a wave that
// straddles a year boundary to the earlier year, so it is never counted
// twice. ok is false only if no candidate year satisfies the rule, which
// cannot happen for a non-empty wave (the earliest year among its vertex
// dates always qualifies).
func yearOf(w wave.FloodWave) (year int, ok bool) {
	years := map[int]struct{}{}
	for _, v := range w.Vertices {
		years[v.Date().Year()] = struct{}{}
	}
	candidates := make([]int, 0, len(years))
	for y := range years {
		candidates = append(candidates, y)
	}
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			if candidates[j] < candidates[i] {
				candidates[i], candidates[j] = candidates[j], candidates[i]
			}
		}
	}

	for _, y := range candidates {
		noneInPrev := true
		allInNext := true
		for _, v := range w.Vertices {
			vy := v.Date().Year()
			if vy == y-1 {
				noneInPrev = false
			}
			if vy != y+1 {
				allInNext = false
			}
		}
		if noneInPrev && !allInNext {
			return y, true
		}
	}
	return 0, false
}

// yearStat computes one year's aggregates. g's waves are collapsed; slope
// and high-ratio statistics are scoped to vertices/edges dated within the
// year itself.
func yearStat(g *wavegraph.Graph, ol *station.OrderedList, year int) YearStat {
	var velocities []float64
	waveCount := 0
	for _, w := range wave.Extract(g, true) {
		y, ok := yearOf(w)
		if !ok || y != year {
			continue
		}
		waveCount++
		velocities = append(velocities, Velocity(ol, w))
	}

	var slopes []float64
	for _, e := range g.Edges() {
		if e.From.Date().Year() == year {
			slopes = append(slopes, e.Slope)
		}
	}

	highCount, total := 0, 0
	for _, v := range g.Vertices() {
		if v.ID.Date().Year() != year {
			continue
		}
		total++
		if v.Peak.Class == peak.High {
			highCount++
		}
	}
	ratio := 0.0
	if total > 0 {
		ratio = float64(highCount) / float64(total)
	}

	return YearStat{
		Year:          year,
		WaveCount:     waveCount,
		VelocityStats: computeStats(velocities),
		SlopeStats:    computeStats(slopes),
		HighRatio:     ratio,
	}
}

// YearlyAggregates computes YearStat for every year in [startYear,
// endYear], one goroutine per year via errgroup: each year's sweep reads
// the same immutable graph and writes only to its own result slot, so the
// fan-out shares no mutable state.
func YearlyAggregates(ctx context.Context, g *wavegraph.Graph, ol *station.OrderedList, startYear, endYear int) ([]YearStat, error) {
	n := endYear - startYear + 1
	if n <= 0 {
		return nil, nil
	}
	results := make([]YearStat, n)

	grp, _ := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		i := i
		year := startYear + i
		grp.Go(func() error {
			results[i] = yearStat(g, ol, year)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
