package edge

import "errors"

// ErrInvalidStationOrder is returned when the supplied upstream/downstream
// pair does not satisfy rkm(upstream) > rkm(downstream). Find relies on
// this to make the slope denominator strictly positive; a caller that
// passes stations out of order has violated the ordering invariant
// station.OrderedList otherwise guarantees.
var ErrInvalidStationOrder = errors.New("edge: upstream river_km must exceed downstream river_km")
