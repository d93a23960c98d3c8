// =============================================================================
// Dataset Report Tools - Configuration Module
// =============================================================================
//
// This module loads and validates the application configuration. All settings
// live in a single optional YAML file (config.yaml by default); absent fields
// fall back to defaults so the tools run out of the box with no configuration
// at all.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the global application configuration, loaded from config.yaml.
type Config struct {
	// OutputDir is the directory all result files are written to.
	// Created (with parents) if absent. Default: "./output".
	OutputDir string `yaml:"output_dir"`

	// Result file names, one per tool, relative to OutputDir.
	StatisticsResults string `yaml:"statistics_results"`
	ConversionResults string `yaml:"conversion_results"`
	WordCountResults  string `yaml:"wordcount_results"`
	SalesResults      string `yaml:"sales_results"`

	// LogFile, when non-empty, duplicates console log lines into a file
	// (append mode). Default: "" (console only).
	LogFile string `yaml:"log_file"`

	// LogLevel controls log verbosity: "debug", "info", "warn" or "error".
	// Default: "info". The --verbose flag forces "debug".
	LogLevel string `yaml:"log_level"`

	// ConsolePreviewRows caps how many rows of each invalid-record group the
	// sales tool previews on the console. The written report always carries
	// the full list. Default: 20.
	ConsolePreviewRows int `yaml:"console_preview_rows"`
}

// Default returns the configuration used when no config file is present.
func Default() Config {
	return Config{
		OutputDir:          "./output",
		StatisticsResults:  "StatisticsResults.txt",
		ConversionResults:  "ConvertionResults.txt",
		WordCountResults:   "WordCountResults.txt",
		SalesResults:       "SalesResults.txt",
		LogLevel:           "info",
		ConsolePreviewRows: 20,
	}
}

// Load reads the YAML configuration at path. A missing file is not an error:
// defaults are returned so the tools work without any setup. Fields omitted
// from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	for name, v := range map[string]string{
		"statistics_results": c.StatisticsResults,
		"conversion_results": c.ConversionResults,
		"wordcount_results":  c.WordCountResults,
		"sales_results":      c.SalesResults,
	} {
		if v == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	if c.ConsolePreviewRows <= 0 {
		return fmt.Errorf("console_preview_rows must be positive (got %d)", c.ConsolePreviewRows)
	}
	return nil
}

// StatisticsPath returns the full path of the statistics report file.
func (c Config) StatisticsPath() string {
	return filepath.Join(c.OutputDir, c.StatisticsResults)
}

// ConversionPath returns the full path of the conversion report file.
func (c Config) ConversionPath() string {
	return filepath.Join(c.OutputDir, c.ConversionResults)
}

// WordCountPath returns the full path of the word count report file.
func (c Config) WordCountPath() string {
	return filepath.Join(c.OutputDir, c.WordCountResults)
}

// SalesPath returns the full path of the sales report file.
func (c Config) SalesPath() string {
	return filepath.Join(c.OutputDir, c.SalesResults)
}
