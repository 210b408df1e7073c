// Package peak implements PeakDetector: it turns one station's daily
// water-level series into the set of local maxima ("peaks") that become
// flood-wave vertex candidates.
//
// A peak is an index i such that for every shift k in [1,delta]:
//
//	x[i-k] < x[i]   (strict ascent behind)
//	x[i] >= x[i+k]  (non-strict descent ahead)
//
// The asymmetry is deliberate: it lets a flat-topped plateau be detected
// exactly once, at its left-most summit day, without double-counting while
// still tolerating equal-valued neighbours on the way down.
package peak
