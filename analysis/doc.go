// Package analysis implements the Analyzer: the graph-analytic queries
// built on top of wave extraction and selection — wave counts, unfinished
// waves, propagation time, velocity, slope statistics, flood maps and
// yearly aggregates.
//
// Recoverable conditions (an empty wave set, a station pair with no
// shortest path) are absorbed into empty or NaN results rather than
// errors; propagation_time over an empty set is 0 by convention, matching
// the documented exception to the "divide-by-zero yields NaN" rule.
package analysis
