package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("the default configuration should validate, got: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phono.yaml")
	content := "workers: 4\ntop: 5\nlanguage: fr\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("loading failed: %v", err)
	}
	if cfg.Workers != 4 || cfg.TopN != 5 || cfg.Language != "fr" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.SyllableSep != "-" {
		t.Errorf("unset fields should keep their defaults, separator is %q", cfg.SyllableSep)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestValidateRejectsContradictions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative workers", func(c *Config) { c.Workers = -1 }},
		{"empty separator", func(c *Config) { c.SyllableSep = "" }},
		{"equal separators", func(c *Config) { c.VariantSep = "-" }},
		{"lone table file", func(c *Config) { c.TextTable = "letters.tab" }},
		{"interactive parallel", func(c *Config) { c.Interactive = true; c.Workers = 4 }},
	}
	for _, c := range cases {
		cfg := Default()
		c.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s should fail validation", c.name)
		}
	}
}
