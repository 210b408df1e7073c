package xlog_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/riverwatch/floodwave/xlog"
)

func TestDiscard_DoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		xlog.Discard.Infof("hello %s", "world")
		xlog.Discard.WithField("k", "v").Debugf("nested")
	})
}

func TestNew_AppliesRequestedLevel(t *testing.T) {
	l := xlog.New(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
}
