package station

import "fmt"

// OrderedList is a river's gauging stations in strict downstream order
// (decreasing river kilometre). It is the one place river-km monotonicity
// and ID uniqueness are enforced for the whole chain; edge.Find checks only
// the single station pair it is handed.
type OrderedList struct {
	stations []Station
	index    map[string]int // station ID -> position in stations
}

// NewOrderedList validates and wraps stations, which must already be sorted
// upstream-to-downstream by the caller. It returns ErrEmptyID,
// ErrDuplicateID, ErrInvalidInterval (via Station.Validate) or
// ErrInconsistentOrdering.
func NewOrderedList(stations []Station) (*OrderedList, error) {
	idx := make(map[string]int, len(stations))
	for i, s := range stations {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, dup := idx[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		idx[s.ID] = i

		if i > 0 && !(s.RiverKM < stations[i-1].RiverKM) {
			return nil, fmt.Errorf("%w: %s (%.3f) does not come after %s (%.3f)",
				ErrInconsistentOrdering, s.ID, s.RiverKM, stations[i-1].ID, stations[i-1].RiverKM)
		}
	}

	out := make([]Station, len(stations))
	copy(out, stations)

	return &OrderedList{stations: out, index: idx}, nil
}

// Len returns the number of stations in the chain.
func (ol *OrderedList) Len() int { return len(ol.stations) }

// At returns the station at position i (0 = furthest upstream).
func (ol *OrderedList) At(i int) Station { return ol.stations[i] }

// All returns the stations in downstream order. The returned slice is a
// copy; mutating it does not affect ol.
func (ol *OrderedList) All() []Station {
	out := make([]Station, len(ol.stations))
	copy(out, ol.stations)
	return out
}

// Get returns the station with the given ID.
func (ol *OrderedList) Get(id string) (Station, error) {
	i, ok := ol.index[id]
	if !ok {
		return Station{}, fmt.Errorf("%w: %s", ErrUnknownStation, id)
	}
	return ol.stations[i], nil
}

// IndexOf returns the chain position of the given station ID.
func (ol *OrderedList) IndexOf(id string) (int, error) {
	i, ok := ol.index[id]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrUnknownStation, id)
	}
	return i, nil
}

// Has reports whether id is a known station.
func (ol *OrderedList) Has(id string) bool {
	_, ok := ol.index[id]
	return ok
}

// Downstream returns the immediate downstream neighbour of id, and false if
// id is the last station in the chain.
func (ol *OrderedList) Downstream(id string) (Station, bool) {
	i, ok := ol.index[id]
	if !ok || i+1 >= len(ol.stations) {
		return Station{}, false
	}
	return ol.stations[i+1], true
}

// AdjacentPair is one (upstream, downstream) pair of neighbouring stations.
type AdjacentPair struct {
	Upstream   Station
	Downstream Station
}

// AdjacentPairs returns every consecutive (upstream,downstream) pair in the
// chain, in downstream order.
func (ol *OrderedList) AdjacentPairs() []AdjacentPair {
	if len(ol.stations) < 2 {
		return nil
	}
	out := make([]AdjacentPair, 0, len(ol.stations)-1)
	for i := 0; i+1 < len(ol.stations); i++ {
		out = append(out, AdjacentPair{Upstream: ol.stations[i], Downstream: ol.stations[i+1]})
	}
	return out
}

// Between returns the sub-chain of stations from startID to endID
// inclusive, in downstream order. Both IDs must belong to ol and startID
// must not come after endID.
func (ol *OrderedList) Between(startID, endID string) ([]Station, error) {
	si, err := ol.IndexOf(startID)
	if err != nil {
		return nil, err
	}
	ei, err := ol.IndexOf(endID)
	if err != nil {
		return nil, err
	}
	if si > ei {
		return nil, fmt.Errorf("station: %s is downstream of %s", startID, endID)
	}
	out := make([]Station, ei-si+1)
	copy(out, ol.stations[si:ei+1])
	return out, nil
}

// RiverKMAtBoundaries partitions [period.Start, period.End] at every
// existence-interval boundary that falls strictly inside it, returning the
// sorted, de-duplicated list of cut points including period.Start and
// period.End themselves. GraphBuilder uses this to run PeakDetector/
// EdgeFinder only over stations that are actually live in each sub-period.
func (ol *OrderedList) RiverKMAtBoundaries(period Interval) []Date {
	cuts := map[Date]struct{}{period.Start: {}, period.End: {}}
	for _, s := range ol.stations {
		for _, boundary := range []Date{s.Existence.Start, s.Existence.End.AddDays(1)} {
			if boundary.InRange(period.Start, period.End) {
				cuts[boundary] = struct{}{}
			}
		}
	}

	out := make([]Date, 0, len(cuts))
	for d := range cuts {
		out = append(out, d)
	}
	// Insertion sort is fine: the number of distinct cut points is tiny
	// (bounded by 2*stations), and this keeps the dependency list short.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Before(out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// LiveAt returns the subset of stations whose existence interval contains
// d, preserving downstream order.
func (ol *OrderedList) LiveAt(d Date) []Station {
	var out []Station
	for _, s := range ol.stations {
		if d.InRange(s.Existence.Start, s.Existence.End) {
			out = append(out, s)
		}
	}
	return out
}
