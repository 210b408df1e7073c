package config

import "errors"

// ErrInvalidConfig wraps any struct-tag validation failure from Config.Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// ErrMissingTolerance indicates a station with a downstream neighbour has
// no entry in Config.Tolerances.
var ErrMissingTolerance = errors.New("config: missing tolerance for station")
