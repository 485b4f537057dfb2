// Package config loads the tool's YAML configuration: where the
// database lives, which code prefixes the parser accepts and how wide
// the row-grouping band is. Every field has a working default so the
// file is optional.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ebarrera/manifiesto/codes"
	"github.com/ebarrera/manifiesto/rows"
)

// Config is the full tool configuration.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`

	// Prefixes is the accepted item-code prefix set. Empty keeps the
	// built-in set.
	Prefixes []string `yaml:"prefixes"`

	// Tolerance is the vertical row-grouping band in PDF points.
	Tolerance float64 `yaml:"tolerance"`

	// OCRLanguages are the Tesseract language codes for scanned
	// manifests.
	OCRLanguages []string `yaml:"ocr_languages"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		DBPath:       "manifiesto.db",
		Prefixes:     codes.DefaultPrefixes,
		Tolerance:    rows.DefaultTolerance,
		OCRLanguages: []string{"spa", "eng"},
	}
}

// Load reads the YAML file at path on top of the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %v", c.Tolerance)
	}
	for _, p := range c.Prefixes {
		if p == "" {
			return fmt.Errorf("prefixes must not contain empty entries")
		}
	}
	return nil
}
