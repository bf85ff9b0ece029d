package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 0.01, cfg.Engine.Step)
	assert.Equal(t, 100, cfg.Engine.Samples)
	assert.Equal(t, math.Pi, cfg.Engine.PitMaxSweep)
	assert.Equal(t, 1.5, cfg.Engine.WidthRatioLimit)
	assert.Equal(t, float32(10), cfg.Silhouette.CannyLow)
	assert.Equal(t, float32(100), cfg.Silhouette.CannyHigh)
	assert.Equal(t, 600, cfg.Image.MaxSize)
	assert.False(t, cfg.Silhouette.RemoveBackground)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("empty path returns defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("file overlays defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, `
engine:
  samples: 250
  workers: 4
silhouette:
  removeBackground: true
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, 250, cfg.Engine.Samples)
		assert.Equal(t, 4, cfg.Engine.Workers)
		assert.True(t, cfg.Silhouette.RemoveBackground)
		// untouched values keep their defaults
		assert.Equal(t, 0.01, cfg.Engine.Step)
		assert.Equal(t, 600, cfg.Image.MaxSize)
	})

	t.Run("missing file fails", func(t *testing.T) {
		t.Parallel()
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("invalid values fail validation", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "engine:\n  step: -1\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "step")
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "engine: [not a map")
		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Engine.Samples = 0 }},
		{"negative pitStep", func(c *Config) { c.Engine.PitStep = -0.01 }},
		{"zero sweep", func(c *Config) { c.Engine.PitMaxSweep = 0 }},
		{"zero kernel", func(c *Config) { c.Silhouette.DilateKernel = 0 }},
		{"zero maxSize", func(c *Config) { c.Image.MaxSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
