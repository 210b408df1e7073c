package synth

import "errors"

// ErrInvalidParams is returned when a generator option leaves the pulse
// parameters outside their valid domain (non-positive amplitude, duty
// outside [0,1], negative noise sigma, gap fraction outside [0,1)).
var ErrInvalidParams = errors.New("synth: invalid parameters")
