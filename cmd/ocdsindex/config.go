package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/open-contracting/ocdsindex"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidAnalyzerLanguage = errors.New("analyzers keys must be two-character language codes")
	ErrEmptyAnalyzer           = errors.New("analyzers values must not be empty")
	ErrEmptyExcludeDir         = errors.New("exclude_dirs entries must not be empty")
)

// Config represents the optional YAML configuration file.
type Config struct {
	// Database path.
	DB string `yaml:"db"`

	// Directory basenames skipped by the sphinx command. Nil means
	// ocdsindex.DefaultExcludedDirs; an empty list excludes nothing.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Analyzer name per language code, overriding ocdsindex.Analyzers.
	Analyzers map[string]string `yaml:"analyzers"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	for lang, name := range c.Analyzers {
		if !ocdsindex.IsLanguageCode(lang) {
			return fmt.Errorf("%w: %q", ErrInvalidAnalyzerLanguage, lang)
		}
		if name == "" {
			return fmt.Errorf("%w: %q", ErrEmptyAnalyzer, lang)
		}
	}
	for i, dir := range c.ExcludeDirs {
		if dir == "" {
			return fmt.Errorf("%w: exclude_dirs[%d]", ErrEmptyExcludeDir, i)
		}
	}
	return nil
}

// excludedDirs returns the configured excluded directories, or the defaults.
func (c *Config) excludedDirs() []string {
	if c == nil || c.ExcludeDirs == nil {
		return ocdsindex.DefaultExcludedDirs
	}
	return c.ExcludeDirs
}
