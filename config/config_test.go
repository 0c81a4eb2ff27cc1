package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatingConfig_Normalized(t *testing.T) {
	t.Run("nil uses defaults", func(t *testing.T) {
		var cfg *GatingConfig
		assert.Equal(t, DefaultGatingConfig(), cfg.Normalized())
	})

	t.Run("partial keeps overrides", func(t *testing.T) {
		cfg := &GatingConfig{AccuracyThresholdMeters: 50, GPSTimeout: 3 * time.Second}
		got := cfg.Normalized()

		assert.InDelta(t, 50, got.AccuracyThresholdMeters, 0.0001)
		assert.Equal(t, 3*time.Second, got.GPSTimeout)
		assert.Equal(t, 5*time.Second, got.ZoneLookupTimeout)
		assert.Equal(t, 60*time.Second, got.PermissionTimeout)
		assert.Equal(t, 3*time.Second, got.StoreTimeout)
		assert.Equal(t, 2*time.Second, got.PlatformTimeout)
	})
}

func TestMonitorConfig_PollPhasesOrDefault(t *testing.T) {
	var cfg *MonitorConfig
	phases := cfg.PollPhasesOrDefault()
	require.Len(t, phases, 3)
	assert.Equal(t, 2*time.Second, phases[0].Interval)
	assert.Equal(t, 10*time.Second, phases[2].Interval)

	custom := &MonitorConfig{Phases: []PollPhase{{Interval: time.Second}}}
	assert.Len(t, custom.PollPhasesOrDefault(), 1)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  env: test
gating:
  gpsTimeout: 10s
  accuracyThresholdMeters: 100
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sample.yaml"), content, 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("GATING_GPSTIMEOUT", "4s")

	cfg, err := LoadWithEnv[Config]("sample", rel)
	require.NoError(t, err)
	require.NotNil(t, cfg.Gating)
	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 4*time.Second, cfg.Gating.GPSTimeout)
	assert.InDelta(t, 100, cfg.Gating.AccuracyThresholdMeters, 0.0001)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
}
