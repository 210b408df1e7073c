package edge

import (
	"github.com/riverwatch/floodwave/config"
	"github.com/riverwatch/floodwave/peak"
)

// Link is a candidate connection from an upstream peak to a downstream
// peak, before it is materialised into a wavegraph.Edge. It is named Link
// rather than Edge to avoid colliding with wavegraph.Edge, the graph
// engine's own edge type.
type Link struct {
	From  peak.Peak
	To    peak.Peak
	Slope float64
}

// findConfig holds Find tunables assembled by Option functions.
type findConfig struct {
	tolerance config.Tolerance
}

// Option configures a Find call.
type Option func(*findConfig)

// WithTolerance overrides the (backward, forward) day tolerance used to
// build the candidate window around each upstream peak.
func WithTolerance(t config.Tolerance) Option {
	return func(c *findConfig) {
		c.tolerance = t
	}
}

func newFindConfig(opts []Option) findConfig {
	var c findConfig
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
