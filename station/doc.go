// Package station holds the gauge-station metadata that every other
// floodwave package builds on: the ordered river-km chain, each station's
// null-point and level threshold, its existence interval, and its daily
// water-level series.
//
// Stations are loaded by the caller (from a CSV, a database, a remote
// service — floodwave does not care) and handed to NewOrderedList, which
// is the one place river-km monotonicity is enforced across the whole
// chain. peak and graphbuild trust that invariant without re-checking it;
// edge.Find checks only the one upstream/downstream pair it is given.
package station
