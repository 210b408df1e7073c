package xlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the subset of logrus's API this module's packages depend on.
// Accepting this interface instead of *logrus.Logger lets a caller plug in
// any logger that has these methods (or a test spy). Because WithField and
// WithFields return *logrus.Entry and take logrus.Fields, an implementation
// still imports logrus.
type Logger interface {
	WithField(key string, value any) *logrus.Entry
	WithFields(fields logrus.Fields) *logrus.Entry
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Discard is the default Logger every package falls back to when the
// caller supplies none: a logrus.Logger writing to io.Discard, so logging
// calls are cheap no-ops rather than a nil check scattered through every
// call site.
var Discard Logger = newDiscard()

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// New returns a logrus.Logger preconfigured with a text formatter and the
// given level, suitable as a module-wide default for callers who do want
// output.
func New(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(level)
	return l
}
