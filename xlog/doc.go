// Package xlog is a thin structured-logging facade over logrus, used by the
// peak and graphbuild packages. It exists so that "no logger configured"
// is a first-class, silent default (io.Discard output) rather than each
// package reaching for logrus.StandardLogger() directly, and so call sites
// pass a small Logger interface instead of a concrete logrus type.
package xlog
