package station

import "errors"

// Sentinel errors for the station package. Callers should branch on these
// with errors.Is, never by matching error strings.
var (
	// ErrEmptyID indicates a Station with an empty ID was supplied.
	ErrEmptyID = errors.New("station: id is empty")

	// ErrInconsistentOrdering indicates river_km is not strictly decreasing
	// along the supplied station list. Acyclicity of the downstream graph
	// depends on this, so it is a load-time failure, not a recoverable one.
	ErrInconsistentOrdering = errors.New("station: river_km is not strictly decreasing")

	// ErrInvalidInterval indicates an interval with end before start,
	// either the analysis [start_date,end_date] or a station existence
	// interval.
	ErrInvalidInterval = errors.New("station: end date before start date")

	// ErrUnknownStation indicates a query referenced a station ID absent
	// from the ordered list.
	ErrUnknownStation = errors.New("station: unknown station")

	// ErrDuplicateID indicates the same station ID appeared twice in the
	// input list.
	ErrDuplicateID = errors.New("station: duplicate station id")
)
