package analysis

import "errors"

// ErrMissingStation is returned when a query names a station the graph or
// station registry does not contain.
var ErrMissingStation = errors.New("analysis: missing station")
