package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/riverwatch/floodwave/station"
)

// unit constants, named to avoid magic numbers in the envelope math.
const (
	unitZero  = 0.0
	unitOne   = 1.0
	triDouble = 2.0
	triCenter = 1.0
)

// Generate returns n consecutive daily samples starting at start, shaped
// as a flat baseline with one flood pulse riding on it. The result is
// fully deterministic for a fixed (n, start, seed, opts): the same call
// always returns byte-identical samples, which is what makes it useful as
// a golden-friendly test fixture.
//
// Complexity: O(n) time, O(n) memory.
func Generate(start station.Date, n int, seed int64, opts ...Option) ([]station.Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidParams, n)
	}
	cfg := newConfig(n, opts...)
	if !cfg.valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidParams, cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(seed))
	}

	out := make([]station.Sample, n)
	for i := 0; i < n; i++ {
		level := cfg.baseline + cfg.pulseValue(i) + cfg.trend*float64(i)
		if cfg.sigma > 0 {
			level += cfg.sigma * rng.NormFloat64()
		}

		valid := true
		if cfg.gapFrac > 0 && rng.Float64() < cfg.gapFrac {
			valid = false
		}

		out[i] = station.Sample{
			Date:  start.AddDays(i),
			Level: level,
			Valid: valid,
		}
	}
	return out, nil
}

// pulseValue returns the pulse's contribution (above baseline) at day
// offset i, zero outside [onset, onset+width).
func (cfg config) pulseValue(i int) float64 {
	rel := i - cfg.onset
	if rel < 0 || rel >= cfg.width {
		return unitZero
	}
	frac := float64(rel) / float64(cfg.width)

	if cfg.triangular {
		envelope := unitOne - math.Abs(triDouble*frac-triCenter)
		return cfg.amplitude * envelope
	}
	if frac < cfg.duty {
		return cfg.amplitude
	}
	return unitZero
}
