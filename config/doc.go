// Package config loads and validates the small set of tunables the core
// pipeline needs: the peak-detection window radius, each station's
// forward/backward edge tolerance, and the analysis date range (spec.md
// §3's "Configuration" block).
//
// Config is decoded from YAML with gopkg.in/yaml.v3 and checked with
// github.com/go-playground/validator/v10 struct tags, so a malformed
// configuration fails at load time — before PeakDetector or EdgeFinder ever
// see it — matching the "Structural/configuration errors are surfaced
// immediately" policy in spec.md §7.
package config
