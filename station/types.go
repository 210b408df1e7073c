package station

import (
	"fmt"
	"time"
)

// dateLayout is the one wire format for calendar days the whole module uses.
const dateLayout = "2006-01-02"

// Epoch is the fixed origin day offsets are counted from (station, peak and
// vertex identities all pack a date as an int32 number of days since Epoch,
// per the module's packed-node-identity design). It predates every known
// gauge record, so offsets are always non-negative in practice, though
// nothing requires that.
var Epoch = time.Date(1800, time.January, 1, 0, 0, 0, 0, time.UTC)

// Date is a calendar day with no time-of-day or timezone component.
// The zero Date is not a valid day; use ParseDate or FromDayOffset.
type Date struct {
	t time.Time
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("station: parse date %q: %w", s, err)
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate but panics on error; intended for constants in
// tests and examples, never for untrusted input.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromDayOffset reconstructs the Date that is off days after Epoch.
func FromDayOffset(off int32) Date {
	return Date{t: Epoch.AddDate(0, 0, int(off))}
}

// DayOffset returns the number of days between Epoch and d.
func (d Date) DayOffset() int32 {
	return int32((d.t.Unix() - Epoch.Unix()) / 86400)
}

// String renders d as "YYYY-MM-DD".
func (d Date) String() string { return d.t.Format(dateLayout) }

// IsZero reports whether d is the unset zero value.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// Sub returns the number of days from other to d (d - other).
func (d Date) Sub(other Date) int {
	return int((d.t.Unix() - other.t.Unix()) / 86400)
}

// Year returns the calendar year of d.
func (d Date) Year() int { return d.t.Year() }

// InRange reports whether lo <= d <= hi.
func (d Date) InRange(lo, hi Date) bool {
	return !d.Before(lo) && !d.After(hi)
}

// Interval is an inclusive, closed [Start,End] day range.
type Interval struct {
	Start Date
	End   Date
}

// Validate reports ErrInvalidInterval if End precedes Start.
func (iv Interval) Validate() error {
	if iv.End.Before(iv.Start) {
		return fmt.Errorf("%w: [%s,%s]", ErrInvalidInterval, iv.Start, iv.End)
	}
	return nil
}

// Overlaps reports whether iv and other share at least one day.
func (iv Interval) Overlaps(other Interval) bool {
	return !iv.End.Before(other.Start) && !other.End.Before(iv.Start)
}

// Clamp returns the intersection of iv and other. ok is false if they do
// not overlap, in which case the returned Interval is meaningless.
func (iv Interval) Clamp(other Interval) (out Interval, ok bool) {
	start := iv.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := iv.End
	if other.End.Before(end) {
		end = other.End
	}
	if end.Before(start) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// Sample is one daily reading. Valid is false for a gap in the series; a
// gap is a first-class value rather than a math.NaN() sentinel so it can
// never silently participate in arithmetic.
type Sample struct {
	Date  Date
	Level float64
	Valid bool
}

// Station is one gauging point along the river.
//
// RiverKM must strictly decrease along the ordered station chain (checked
// by NewOrderedList, not here) — this is what makes every downstream edge
// cross a strict river-km decrease, and with it the whole flood-wave graph
// acyclic by construction.
type Station struct {
	ID             string
	Name           string
	RiverKM        float64
	NullPoint      float64
	LevelThreshold float64
	Existence      Interval
}

// Validate checks the fields that are meaningful in isolation (id
// non-empty, existence interval well formed). Ordering across stations is
// checked by NewOrderedList, since it is a property of the whole chain.
func (s Station) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if err := s.Existence.Validate(); err != nil {
		return fmt.Errorf("station %s: %w", s.ID, err)
	}
	return nil
}
