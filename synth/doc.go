// Package synth generates deterministic synthetic water-level series for
// tests, demos and fixtures. A flood pulse is a rectangular or triangular
// bump riding on a flat baseline, with optional linear trend, Gaussian
// noise and missing-day gaps, all reproducible from (n, seed, options).
package synth
