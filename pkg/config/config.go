// Package config provides configuration loading for the measurement
// pipeline. It loads YAML files over built-in defaults, so a config file
// only needs the values it changes.
package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the pipeline.
type Config struct {
	// Engine parameters drive the raster search primitives.
	Engine struct {
		// Step is the ray marching increment in raster units.
		Step float64 `yaml:"step"`

		// Samples is the number of segment samples for girth extremum search.
		Samples int `yaml:"samples"`

		// PitStep is the angular hill-climb increment in radians.
		PitStep float64 `yaml:"pitStep"`

		// PitMaxSweep caps each angular sweep, in radians.
		PitMaxSweep float64 `yaml:"pitMaxSweep"`

		// WidthRatioLimit stops the extremum scan when a candidate width
		// exceeds the first sample's width by this ratio; zero disables it.
		WidthRatioLimit float64 `yaml:"widthRatioLimit"`

		// Workers is the measurement pool size; zero means one per CPU.
		Workers int `yaml:"workers"`
	} `yaml:"engine"`

	// Silhouette parameters drive edge extraction.
	Silhouette struct {
		// CannyLow and CannyHigh are the hysteresis thresholds.
		CannyLow  float32 `yaml:"cannyLow"`
		CannyHigh float32 `yaml:"cannyHigh"`

		// DilateKernel is the square structuring element side in pixels.
		DilateKernel int `yaml:"dilateKernel"`

		// DilateIterations is the number of dilation passes.
		DilateIterations int `yaml:"dilateIterations"`

		// ContourThickness is the stroke width of the rendered contour.
		ContourThickness int `yaml:"contourThickness"`

		// RemoveBackground enables the coarse GrabCut pass for photographs
		// whose background has not been removed upstream.
		RemoveBackground bool `yaml:"removeBackground"`

		// GrabCutIterations refines the GrabCut mask.
		GrabCutIterations int `yaml:"grabCutIterations"`
	} `yaml:"silhouette"`

	// Image parameters drive input normalisation.
	Image struct {
		// MaxSize is the working-size cap in pixels; larger photographs are
		// downscaled preserving aspect ratio.
		MaxSize int `yaml:"maxSize"`
	} `yaml:"image"`
}

// Default returns the configuration the measurement tables were calibrated
// with.
func Default() *Config {
	cfg := &Config{}
	cfg.Engine.Step = 0.01
	cfg.Engine.Samples = 100
	cfg.Engine.PitStep = 0.01
	cfg.Engine.PitMaxSweep = math.Pi
	cfg.Engine.WidthRatioLimit = 1.5
	cfg.Engine.Workers = 0
	cfg.Silhouette.CannyLow = 10
	cfg.Silhouette.CannyHigh = 100
	cfg.Silhouette.DilateKernel = 3
	cfg.Silhouette.DilateIterations = 1
	cfg.Silhouette.ContourThickness = 2
	cfg.Silhouette.RemoveBackground = false
	cfg.Silhouette.GrabCutIterations = 3
	cfg.Image.MaxSize = 600
	return cfg
}

// Load reads a YAML file over the defaults. A missing path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Engine.Step <= 0 {
		return fmt.Errorf("engine step must be positive")
	}
	if c.Engine.Samples < 2 {
		return fmt.Errorf("engine samples must be at least 2")
	}
	if c.Engine.PitStep <= 0 {
		return fmt.Errorf("engine pitStep must be positive")
	}
	if c.Engine.PitMaxSweep <= 0 {
		return fmt.Errorf("engine pitMaxSweep must be positive")
	}
	if c.Silhouette.DilateKernel < 1 {
		return fmt.Errorf("silhouette dilateKernel must be at least 1")
	}
	if c.Image.MaxSize < 1 {
		return fmt.Errorf("image maxSize must be at least 1")
	}
	return nil
}
