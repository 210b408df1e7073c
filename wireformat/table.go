package wireformat

import (
	"github.com/riverwatch/floodwave/analysis"
	"github.com/riverwatch/floodwave/wavegraph"
)

// statsRow flattens a Stats value into prefix_field keys, e.g. prefix
// "velocity" yields "velocity_n", "velocity_mean", "velocity_min",
// "velocity_max", "velocity_median", "velocity_stddev". Flattening by
// prefix, rather than nesting, is what lets one YearStat become one flat
// CSV row with no sub-objects.
func statsRow(prefix string, s analysis.Stats) map[string]any {
	return map[string]any{
		prefix + "_n":      s.N,
		prefix + "_mean":   s.Mean,
		prefix + "_min":    s.Min,
		prefix + "_max":    s.Max,
		prefix + "_median": s.Median,
		prefix + "_stddev": s.StdDev,
	}
}

// YearStatsTable flattens a slice of analysis.YearStat into one row per
// year, suitable for an external reporting layer to hand straight to a CSV
// or spreadsheet writer — this module ships no such writer itself.
func YearStatsTable(stats []analysis.YearStat) []map[string]any {
	rows := make([]map[string]any, 0, len(stats))
	for _, s := range stats {
		row := map[string]any{
			"year":       s.Year,
			"wave_count": s.WaveCount,
			"high_ratio": s.HighRatio,
		}
		for k, v := range statsRow("velocity", s.VelocityStats) {
			row[k] = v
		}
		for k, v := range statsRow("slope", s.SlopeStats) {
			row[k] = v
		}
		rows = append(rows, row)
	}
	return rows
}

// FloodMapTable flattens a FloodMap into one row per aggregated edge, with
// vertex labels rendered via g.Label so the table is self-describing
// without a side lookup.
func FloodMapTable(fm analysis.FloodMap, g *wavegraph.Graph) []map[string]any {
	rows := make([]map[string]any, 0, len(fm.Edges))
	for _, e := range fm.Edges {
		rows = append(rows, map[string]any{
			"from":   g.Label(e.From),
			"to":     g.Label(e.To),
			"weight": e.Weight,
		})
	}
	return rows
}
