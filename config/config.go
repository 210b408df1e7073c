package config

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/riverwatch/floodwave/station"
)

// validate is package-private and reused across calls: per the validator
// docs it caches struct metadata internally and is safe for concurrent use.
var validate = validator.New()

// Tolerance is the per-station EdgeFinder window: how many days before
// (Backward, "alpha") and after (Forward, "beta") an upstream peak's date a
// downstream peak may fall and still be linked to it.
type Tolerance struct {
	Backward int `yaml:"backward" validate:"gte=0"`
	Forward  int `yaml:"forward" validate:"gte=0"`
}

// Config is the full set of tunables for one analysis run.
type Config struct {
	// WindowRadius is delta, the centred-window radius used by PeakDetector.
	WindowRadius int `yaml:"window_radius" validate:"gte=1"`

	// Tolerances maps station ID to its EdgeFinder tolerance. Every station
	// that has a downstream neighbour must appear here; graphbuild reports
	// a missing entry rather than silently defaulting it, since a silent
	// zero-tolerance would quietly change analysis results.
	Tolerances map[string]Tolerance `yaml:"tolerances" validate:"required,dive"`

	StartDate string `yaml:"start_date" validate:"required"`
	EndDate   string `yaml:"end_date" validate:"required"`
}

// Period parses StartDate/EndDate into a station.Interval, validating that
// End does not precede Start.
func (c Config) Period() (station.Interval, error) {
	start, err := station.ParseDate(c.StartDate)
	if err != nil {
		return station.Interval{}, err
	}
	end, err := station.ParseDate(c.EndDate)
	if err != nil {
		return station.Interval{}, err
	}
	iv := station.Interval{Start: start, End: end}
	if err := iv.Validate(); err != nil {
		return station.Interval{}, err
	}
	return iv, nil
}

// ToleranceFor returns the configured tolerance for a station, or
// ErrMissingTolerance if it has none.
func (c Config) ToleranceFor(stationID string) (Tolerance, error) {
	t, ok := c.Tolerances[stationID]
	if !ok {
		return Tolerance{}, fmt.Errorf("%w: %s", ErrMissingTolerance, stationID)
	}
	return t, nil
}

// Load decodes YAML from r into a Config and validates it. On success the
// returned Config is safe to hand to graphbuild.Build without further
// checks.
func Load(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate runs struct-tag validation and the cross-field checks tags
// cannot express (the date range itself must parse and be non-inverted).
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if _, err := c.Period(); err != nil {
		return err
	}
	return nil
}
