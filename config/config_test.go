package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverwatch/floodwave/config"
)

const validYAML = `
window_radius: 2
tolerances:
  A:
    backward: 0
    forward: 2
  B:
    backward: 1
    forward: 1
start_date: "2000-01-01"
end_date: "2000-12-31"
`

func TestLoad_OK(t *testing.T) {
	c, err := config.Load(strings.NewReader(validYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, c.WindowRadius)

	tol, err := c.ToleranceFor("A")
	require.NoError(t, err)
	assert.Equal(t, 2, tol.Forward)

	period, err := c.Period()
	require.NoError(t, err)
	assert.Equal(t, "2000-01-01", period.Start.String())
}

func TestLoad_RejectsZeroWindowRadius(t *testing.T) {
	bad := strings.Replace(validYAML, "window_radius: 2", "window_radius: 0", 1)
	_, err := config.Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_RejectsInvertedDateRange(t *testing.T) {
	bad := strings.Replace(validYAML, `end_date: "2000-12-31"`, `end_date: "1999-01-01"`, 1)
	_, err := config.Load(strings.NewReader(bad))
	require.Error(t, err)
}

func TestToleranceFor_Missing(t *testing.T) {
	c, err := config.Load(strings.NewReader(validYAML))
	require.NoError(t, err)
	_, err = c.ToleranceFor("Z")
	assert.ErrorIs(t, err, config.ErrMissingTolerance)
}
