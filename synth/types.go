package synth

import "math/rand"

// file-local defaults, named to avoid magic numbers scattered through pulse.go.
const (
	defBaseline   = 100.0 // default flat water level outside the pulse, in cm
	defAmplitude  = 150.0 // default pulse height above baseline, in cm
	defWidth      = 6     // default pulse width in days
	defDuty       = 0.5   // default rectangular on-fraction of width
	defTriangular = true  // default shape: triangular rise/fall reads as a flood wave
	defSigma      = 0.0   // default Gaussian noise sigma (0 disables noise)
	defTrend      = 0.0   // default linear trend increment per day
	defGapFrac    = 0.0   // default fraction of days dropped as gaps
)

// config holds the resolved knobs for Generate. Each Option mutates one
// field; newConfig applies defaults first, then every option in order.
type config struct {
	rng        *rand.Rand
	baseline   float64
	amplitude  float64
	width      int
	onset      int // day offset (from series start) where the pulse begins
	duty       float64
	triangular bool
	sigma      float64
	trend      float64
	gapFrac    float64
}

// Option customizes Generate's output. Option constructors never panic and
// ignore nil/zero inputs that would otherwise be no-ops.
type Option func(cfg *config)

func newConfig(n int, opts ...Option) config {
	cfg := config{
		baseline:   defBaseline,
		amplitude:  defAmplitude,
		width:      defWidth,
		onset:      n / 3,
		duty:       defDuty,
		triangular: defTriangular,
		sigma:      defSigma,
		trend:      defTrend,
		gapFrac:    defGapFrac,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBaseline sets the flat water level outside the pulse.
func WithBaseline(level float64) Option {
	return func(cfg *config) { cfg.baseline = level }
}

// WithAmplitude sets the pulse height above the baseline.
func WithAmplitude(amp float64) Option {
	return func(cfg *config) { cfg.amplitude = amp }
}

// WithWidth sets the pulse width in days.
func WithWidth(days int) Option {
	return func(cfg *config) { cfg.width = days }
}

// WithOnset sets the day offset (from the series start) where the pulse
// begins. Negative values are a no-op; use the default (n/3) instead.
func WithOnset(day int) Option {
	return func(cfg *config) {
		if day >= 0 {
			cfg.onset = day
		}
	}
}

// WithDuty sets the rectangular pulse's on-fraction of its width. Ignored
// when the shape is triangular.
func WithDuty(duty float64) Option {
	return func(cfg *config) { cfg.duty = duty }
}

// WithTriangular selects a triangular rise-and-fall shape (the default);
// WithRectangular selects a flat-topped rectangular shape.
func WithTriangular() Option { return func(cfg *config) { cfg.triangular = true } }
func WithRectangular() Option {
	return func(cfg *config) { cfg.triangular = false }
}

// WithNoise sets the Gaussian noise sigma added to every sample.
func WithNoise(sigma float64) Option {
	return func(cfg *config) { cfg.sigma = sigma }
}

// WithTrend sets a linear increment added per day (simulates slow seasonal
// drift independent of the pulse itself).
func WithTrend(perDay float64) Option {
	return func(cfg *config) { cfg.trend = perDay }
}

// WithGaps sets the fraction of days (in [0,1)) dropped from the series as
// missing samples, chosen deterministically from the same RNG stream as
// the noise.
func WithGaps(fraction float64) Option {
	return func(cfg *config) { cfg.gapFrac = fraction }
}

// WithRand injects an explicit RNG source, overriding the per-call seed.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

func (cfg config) valid() bool {
	return cfg.amplitude > 0 &&
		cfg.width > 0 &&
		cfg.sigma >= 0 &&
		cfg.duty >= 0 && cfg.duty <= 1 &&
		cfg.gapFrac >= 0 && cfg.gapFrac < 1
}
