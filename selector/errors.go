package selector

import "errors"

// ErrUnknownStation is returned when a selection names a station the
// graph's registry does not contain.
var ErrUnknownStation = errors.New("selector: unknown station")
