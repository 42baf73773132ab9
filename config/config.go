// Package config holds the run configuration of the phono tool.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-backed run configuration. Zero fields of a loaded
// file keep their defaults.
type Config struct {
	Language    string `yaml:"language"`     // BCP 47 tag; empty detects the user locale
	TextTable   string `yaml:"text_table"`   // table file for the written alphabet; empty uses built-ins
	PhonTable   string `yaml:"phon_table"`   // table file for the phonetic alphabet; empty uses built-ins
	SyllableSep string `yaml:"syllable_sep"` // separator between syllables
	VariantSep  string `yaml:"variant_sep"`  // separator between pronunciation variants
	Workers     int    `yaml:"workers"`      // parallel annotation workers
	TopN        int    `yaml:"top"`          // ranking size of frequency reports
	Interactive bool   `yaml:"interactive"`  // prompt for unknown characters
}

// Default returns the configuration used when no file is given: built-in
// tables for the detected locale, the standard separators, serial
// processing, rankings of 15.
func Default() *Config {
	return &Config{
		SyllableSep: "-",
		VariantSep:  ";",
		Workers:     1,
		TopN:        15,
	}
}

// LoadFile reads a YAML configuration file over the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read configuration: %w", err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse configuration %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions.
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return fmt.Errorf("workers must not be negative, have %d", cfg.Workers)
	}
	if cfg.SyllableSep == "" || cfg.VariantSep == "" {
		return fmt.Errorf("separators must not be empty")
	}
	if cfg.SyllableSep == cfg.VariantSep {
		return fmt.Errorf("syllable and variant separator must differ, both are %q", cfg.SyllableSep)
	}
	if (cfg.TextTable == "") != (cfg.PhonTable == "") {
		return fmt.Errorf("text_table and phon_table must be given together")
	}
	if cfg.Interactive && cfg.Workers > 1 {
		return fmt.Errorf("interactive classification cannot run with %d parallel workers", cfg.Workers)
	}
	return nil
}
