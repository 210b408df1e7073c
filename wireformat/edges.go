package wireformat

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/riverwatch/floodwave/edge"
	"github.com/riverwatch/floodwave/station"
)

// EdgeListing is one upstream peak's fan-out: every downstream peak date
// it links to, paired by index with that link's slope.
type EdgeListing struct {
	UpstreamDate    station.Date
	DownstreamDates []station.Date
	Slopes          []float64
}

type edgeListingWire struct {
	Dates  []string  `json:"dates"`
	Slopes []float64 `json:"slopes"`
}

// EncodeEdges renders a station pair's links as a JSON object keyed by
// upstream date: {"2020-06-01": {"dates": [...], "slopes": [...]}, ...}.
// Multiple links sharing the same upstream peak (branching, per EdgeFinder's
// no-dedup contract) collapse into one key with parallel date/slope lists,
// both sorted ascending by downstream date.
func EncodeEdges(links []edge.Link) ([]byte, error) {
	byUpstream := map[string][]edge.Link{}
	for _, l := range links {
		key := l.From.Date.String()
		byUpstream[key] = append(byUpstream[key], l)
	}

	raw := make(map[string]edgeListingWire, len(byUpstream))
	for key, group := range byUpstream {
		sort.Slice(group, func(i, j int) bool { return group[i].To.Date.Before(group[j].To.Date) })
		w := edgeListingWire{
			Dates:  make([]string, len(group)),
			Slopes: make([]float64, len(group)),
		}
		for i, l := range group {
			w.Dates[i] = l.To.Date.String()
			w.Slopes[i] = l.Slope
		}
		raw[key] = w
	}
	return json.MarshalIndent(raw, "", "  ")
}

// DecodeEdges parses the listing EncodeEdges produces into one EdgeListing
// per upstream date, sorted ascending by upstream date.
func DecodeEdges(data []byte) ([]EdgeListing, error) {
	var raw map[string]edgeListingWire
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("wireformat: decode edges: %w", err)
	}

	out := make([]EdgeListing, 0, len(raw))
	for upstreamStr, w := range raw {
		if len(w.Dates) != len(w.Slopes) {
			return nil, fmt.Errorf("%w: edge listing for %s has mismatched dates/slopes lengths", ErrMalformedRecord, upstreamStr)
		}
		upstream, err := station.ParseDate(upstreamStr)
		if err != nil {
			return nil, fmt.Errorf("wireformat: decode edges: %w", err)
		}
		downstream := make([]station.Date, len(w.Dates))
		for i, ds := range w.Dates {
			d, err := station.ParseDate(ds)
			if err != nil {
				return nil, fmt.Errorf("wireformat: decode edges: %w", err)
			}
			downstream[i] = d
		}
		out = append(out, EdgeListing{
			UpstreamDate:    upstream,
			DownstreamDates: downstream,
			Slopes:          append([]float64(nil), w.Slopes...),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].UpstreamDate.Before(out[j].UpstreamDate) })
	return out, nil
}
