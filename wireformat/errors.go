package wireformat

import "errors"

var (
	// ErrUnknownStation is returned when a decoded record names a station
	// not present in the station list the caller supplied for decoding.
	ErrUnknownStation = errors.New("wireformat: unknown station")

	// ErrMalformedRecord is returned when a decoded peak or edge listing
	// entry has a shape the encoder never produces (wrong-length array,
	// unknown class tag).
	ErrMalformedRecord = errors.New("wireformat: malformed record")
)
