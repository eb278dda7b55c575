// Package config holds the tool's settings: built-in defaults, an optional
// yaml file, and flag overrides layered in that order.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory
// when no explicit --config path is given.
const DefaultFileName = ".keypoints.yaml"

// Config holds the tunable settings of the tool. All fields have working
// defaults; a yaml file and command-line flags can override them, flags
// taking precedence.
type Config struct {
	// OutDir is where output images are written.
	OutDir string `yaml:"out_dir"`

	// JPEGQuality is the overlay JPEG quality (1-100).
	JPEGQuality int `yaml:"jpeg_quality"`

	// MaxDim, when positive, bounds the longest image side before
	// detection.
	MaxDim int `yaml:"max_dim"`

	// BlurSigma, when positive, applies Gaussian denoising before
	// detection.
	BlurSigma float64 `yaml:"blur_sigma"`

	// RichOverlay draws keypoints with scale and orientation marks.
	RichOverlay bool `yaml:"rich_overlay"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		OutDir:      ".",
		JPEGQuality: 95,
		RichOverlay: true,
	}
}

// Load returns the configuration, optionally merged from a yaml file.
//
// With an explicit path the file must exist and parse. With an empty path
// the default file name is tried in the working directory and silently
// skipped when absent.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg_quality must be 1-100, got %d", c.JPEGQuality)
	}
	if c.MaxDim < 0 {
		return fmt.Errorf("max_dim must not be negative, got %d", c.MaxDim)
	}
	if c.BlurSigma < 0 {
		return fmt.Errorf("blur_sigma must not be negative, got %g", c.BlurSigma)
	}
	return nil
}
