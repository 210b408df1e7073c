package analysis

import (
	"math"
	"sort"

	"github.com/GaryBoone/GoStats/gostats"
)

// Stats summarises a sample of float64 values: mean and standard deviation
// come from gostats (a running accumulator, no intermediate slice needed
// beyond what's already in memory); min/max/median use stdlib sort, since
// gostats tracks none of the three as a streaming statistic. An empty
// sample reports N==0 and every statistic as NaN.
type Stats struct {
	N      int
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	StdDev float64
}

// computeStats summarises values. It does not mutate its input.
func computeStats(values []float64) Stats {
	if len(values) == 0 {
		return Stats{Mean: math.NaN(), Min: math.NaN(), Max: math.NaN(), Median: math.NaN(), StdDev: math.NaN()}
	}

	var acc gostats.Stats
	sorted := make([]float64, len(values))
	for i, v := range values {
		acc.Update(v)
		sorted[i] = v
	}
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	median := sorted[mid]
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Stats{
		N:      len(values),
		Mean:   acc.Mean(),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: median,
		StdDev: acc.SampleStandardDeviation(),
	}
}
