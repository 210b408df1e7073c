package peak

import "errors"

// ErrInvalidRadius is returned when the configured window radius is not
// positive. This is a programmer error, not a data condition: a run with
// too few samples for the radius still succeeds with an empty peak set.
var ErrInvalidRadius = errors.New("peak: radius must be >= 1")
