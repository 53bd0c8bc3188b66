// Package config provides configuration loading for the comic decoder.
// Supports YAML files, environment variables, and flag overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all decoder configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Decode DecodeConfig `yaml:"decode"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

// DecodeConfig holds default decode behavior, overridable per call.
type DecodeConfig struct {
	ExtractImagesOnly          bool `yaml:"extract_images_only"`
	AcceptExtendedImageFormats bool `yaml:"accept_extended_image_formats"`
	SimpleSorting              bool `yaml:"simple_sorting"`
	SkipBadPDFPages            bool `yaml:"skip_bad_pdf_pages"`
	CreateOutputDir            bool `yaml:"create_output_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Decode: DecodeConfig{
			ExtractImagesOnly: true,
		},
	}
}

// Load reads configuration from a YAML file and applies environment
// overrides. An empty path uses defaults only.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log format must be json or console, got %q", c.Log.Format)
	}
	return nil
}

// applyEnvOverrides overlays COMIC_ENC_* environment variables.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("COMIC_ENC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("COMIC_ENC_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v, ok := envBool("COMIC_ENC_EXTRACT_IMAGES_ONLY"); ok {
		cfg.Decode.ExtractImagesOnly = v
	}
	if v, ok := envBool("COMIC_ENC_ACCEPT_EXTENDED_IMAGE_FORMATS"); ok {
		cfg.Decode.AcceptExtendedImageFormats = v
	}
	if v, ok := envBool("COMIC_ENC_SIMPLE_SORTING"); ok {
		cfg.Decode.SimpleSorting = v
	}
	if v, ok := envBool("COMIC_ENC_SKIP_BAD_PDF_PAGES"); ok {
		cfg.Decode.SkipBadPDFPages = v
	}
	if v, ok := envBool("COMIC_ENC_CREATE_OUTPUT_DIR"); ok {
		cfg.Decode.CreateOutputDir = v
	}
}

func envBool(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
