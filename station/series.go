package station

import "sort"

// Series is one station's daily water-level readings, indexed by date.
// Missing days simply have no entry; a recorded-but-invalid sample is
// stored with Valid==false.
type Series struct {
	StationID string
	byDate    map[Date]Sample
}

// NewSeries builds a Series from an unordered slice of samples. Samples
// with Valid==false are kept (so callers can still see the gap's date),
// but PeakDetector and anything built on Window treats them as missing.
func NewSeries(stationID string, samples []Sample) *Series {
	m := make(map[Date]Sample, len(samples))
	for _, s := range samples {
		m[s.Date] = s
	}
	return &Series{StationID: stationID, byDate: m}
}

// At returns the sample for d, and whether one was recorded at all (a
// recorded-but-invalid sample still returns ok==true with Valid==false).
func (s *Series) At(d Date) (Sample, bool) {
	v, ok := s.byDate[d]
	return v, ok
}

// Level returns (level, true) only for a present and valid sample.
func (s *Series) Level(d Date) (float64, bool) {
	v, ok := s.byDate[d]
	if !ok || !v.Valid {
		return 0, false
	}
	return v.Level, true
}

// Window extracts the station's samples over [iv.Start, iv.End] as a dense,
// date-ordered slice with one entry per calendar day; days with no
// recorded (or invalid) sample carry Valid==false. This dense shape is what
// peak.Detect expects: it lets the detector address "the sample δ days
// before index i" by plain slice arithmetic.
func (s *Series) Window(iv Interval) []Sample {
	n := iv.End.Sub(iv.Start) + 1
	if n <= 0 {
		return nil
	}
	out := make([]Sample, n)
	for i := 0; i < n; i++ {
		d := iv.Start.AddDays(i)
		if v, ok := s.byDate[d]; ok {
			out[i] = v
		} else {
			out[i] = Sample{Date: d, Valid: false}
		}
	}
	return out
}

// Dates returns every date with a present sample, sorted ascending.
func (s *Series) Dates() []Date {
	out := make([]Date, 0, len(s.byDate))
	for d := range s.byDate {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
