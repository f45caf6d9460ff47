package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.RemoveOutliers)
	assert.True(t, c.ChartEnabled)
	assert.Equal(t, "regression.png", c.ChartPath)
	assert.Equal(t, 1000, c.ChartWidth)
	assert.Equal(t, 800, c.ChartHeight)
	assert.Equal(t, "info", c.LogLevel)
}

func TestSaveAndLoad_RoundTripFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := filepath.Join(t.TempDir(), "regress.yaml")
	c, err := Load(p)
	require.NoError(t, err)
	c.RemoveOutliers = true
	c.ChartPath = "out/fit.png"
	c.ChartWidth = 640
	require.NoError(t, Save(c, p))

	got, err := Load(p)
	require.NoError(t, err)
	assert.True(t, got.RemoveOutliers)
	assert.Equal(t, "out/fit.png", got.ChartPath)
	assert.Equal(t, 640, got.ChartWidth)
}

func TestSave_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, Save(&Global{ChartEnabled: true, ChartPath: "a.png", ChartWidth: 10, ChartHeight: 10}, ""))
	_, err := os.Stat(filepath.Join(home, ".regress", "config.yaml"))
	require.NoError(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("REGRESS_REMOVE_OUTLIERS", "true")
	t.Setenv("REGRESS_CHART_TITLE", "Swap impact")
	c, err := Load("")
	require.NoError(t, err)
	assert.True(t, c.RemoveOutliers)
	assert.Equal(t, "Swap impact", c.ChartTitle)
}

func TestLoad_InvalidChartSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	p := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(p, []byte("chart_width: 0\n"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, "Linear Regression", c.ChartTitle)
}
