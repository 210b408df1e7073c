package peak

import (
	"github.com/riverwatch/floodwave/station"
	"github.com/riverwatch/floodwave/xlog"
)

// Class separates a peak's water level relative to its station's
// level_threshold.
type Class uint8

const (
	// Low marks a peak whose level is below the station's threshold.
	Low Class = iota
	// High marks a peak whose level is at or above the station's threshold.
	High
)

// String renders the class as "low" or "high".
func (c Class) String() string {
	if c == High {
		return "high"
	}
	return "low"
}

// Peak is a single local maximum in a station's water-level series.
type Peak struct {
	Station string
	Date    station.Date
	Level   float64
	Class   Class
}

// config holds Detector tunables assembled by Option functions.
type config struct {
	radius int
	logger xlog.Logger
}

// Option configures a Detect call, mirroring the teacher's functional
// option pattern used across its graph-construction APIs.
type Option func(*config)

// WithRadius overrides the default centred-window radius delta (default 2).
func WithRadius(radius int) Option {
	return func(c *config) {
		c.radius = radius
	}
}

// WithLogger injects a logger for Detect's diagnostic output. Detect never
// logs anything above debug level: insufficient data and zero peaks found
// are success states, not warnings.
func WithLogger(logger xlog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	c := config{radius: 2, logger: xlog.Discard}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
