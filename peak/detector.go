package peak

import (
	"fmt"

	"github.com/riverwatch/floodwave/station"
)

// Detect returns every local-maximum peak in samples, a date-sorted dense
// window of one station's daily levels (gaps represented by Sample.Valid
// == false, as produced by station.Series.Window).
//
// An index i qualifies as a peak when, for every shift k in [1,radius]:
//
//	samples[i-k].Level <  samples[i].Level   (strict ascent behind)
//	samples[i+k].Level <= samples[i].Level   (non-strict descent ahead)
//
// and every sample in [i-radius, i+radius] is valid. Indices inside
// [0,radius) or [len(samples)-radius, len(samples)) are never peaks: there
// is not enough context on one side to evaluate the rule. A series too
// short for any index to qualify is not an error: Detect returns an empty,
// nil-error result, matching the "no peaks" success case.
func Detect(st station.Station, samples []station.Sample, opts ...Option) ([]Peak, error) {
	cfg := newConfig(opts)
	if cfg.radius < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, cfg.radius)
	}

	n := len(samples)
	if n < 2*cfg.radius+1 {
		cfg.logger.Debugf("peak: %s: %d samples insufficient for radius %d", st.ID, n, cfg.radius)
		return nil, nil
	}

	var peaks []Peak
	for i := cfg.radius; i < n-cfg.radius; i++ {
		if !isPeak(samples, i, cfg.radius) {
			continue
		}
		level := samples[i].Level
		class := Low
		if level >= st.LevelThreshold {
			class = High
		}
		peaks = append(peaks, Peak{
			Station: st.ID,
			Date:    samples[i].Date,
			Level:   level,
			Class:   class,
		})
	}
	cfg.logger.Debugf("peak: %s: found %d peaks over %d samples", st.ID, len(peaks), n)
	return peaks, nil
}

func isPeak(samples []station.Sample, i, radius int) bool {
	center := samples[i]
	if !center.Valid {
		return false
	}
	for k := 1; k <= radius; k++ {
		left := samples[i-k]
		right := samples[i+k]
		if !left.Valid || !right.Valid {
			return false
		}
		if !(left.Level < center.Level) {
			return false
		}
		if !(right.Level <= center.Level) {
			return false
		}
	}
	return true
}
