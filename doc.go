// Package floodwave reconstructs how flood waves propagate along a river
// from daily water-level series recorded at a chain of gauging stations.
//
// Pipeline, leaves first:
//
//	station    — Station metadata, ordered river-km chain, existence intervals
//	config     — Configuration (window radius, per-station tolerances, date range)
//	peak       — PeakDetector: local maxima of a per-station series
//	edge       — EdgeFinder: links an upstream peak to downstream peaks in range
//	wavegraph  — the directed graph of (station,date) vertices and slope edges
//	graphbuild — assembles wavegraph.Graph from a set of stations + series
//	selector   — sub-graph selections by station, interval, reachability, class
//	wave       — enumerates flood waves as source→sink paths inside components
//	analysis   — wave counts, propagation time, velocity, slope stats, flood maps
//
// Supporting packages:
//
//	synth      — deterministic synthetic gauge series for tests and demos
//	wireformat — stable JSON encodings for peaks, edges, graphs and reports
//	xlog       — structured logging facade used by peak and graphbuild
//
// floodwave is a library: it has no CLI, does not read CSV files or talk to
// any remote data service, and does not render figures or spreadsheets.
// Those concerns belong to callers; floodwave only defines the data
// contracts they exchange with it (see the station package).
//
// The core is a pure, deterministic computation over immutable inputs: the
// same (stations, series, configuration) always produce the same graph and
// the same analytic results.
package floodwave
