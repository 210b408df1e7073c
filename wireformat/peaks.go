package wireformat

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/riverwatch/floodwave/peak"
	"github.com/riverwatch/floodwave/station"
)

// EncodePeaks renders one station's peaks as a JSON object keyed by date,
// each value a 2-element array of [level, class]: {"2020-06-01": [512.3,
// "high"], ...}. Keys are emitted in ascending date order.
func EncodePeaks(peaks []peak.Peak) ([]byte, error) {
	sorted := append([]peak.Peak(nil), peaks...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	raw := make(map[string][2]any, len(sorted))
	for _, p := range sorted {
		raw[p.Date.String()] = [2]any{p.Level, p.Class.String()}
	}
	return json.MarshalIndent(raw, "", "  ")
}

// DecodePeaks parses the listing EncodePeaks produces back into a slice of
// peak.Peak for the given station, sorted ascending by date.
func DecodePeaks(stationID string, data []byte) ([]peak.Peak, error) {
	var raw map[string][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wireformat: decode peaks: %w", err)
	}

	out := make([]peak.Peak, 0, len(raw))
	for dateStr, tuple := range raw {
		if len(tuple) != 2 {
			return nil, fmt.Errorf("%w: peak tuple for %s has %d elements", ErrMalformedRecord, dateStr, len(tuple))
		}
		d, err := station.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("wireformat: decode peaks: %w", err)
		}
		var level float64
		if err := json.Unmarshal(tuple[0], &level); err != nil {
			return nil, fmt.Errorf("%w: peak level for %s: %v", ErrMalformedRecord, dateStr, err)
		}
		var classStr string
		if err := json.Unmarshal(tuple[1], &classStr); err != nil {
			return nil, fmt.Errorf("%w: peak class for %s: %v", ErrMalformedRecord, dateStr, err)
		}
		class, err := parseClass(classStr)
		if err != nil {
			return nil, err
		}
		out = append(out, peak.Peak{Station: stationID, Date: d, Level: level, Class: class})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}
