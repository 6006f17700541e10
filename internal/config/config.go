// Package config handles configuration file parsing and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default file patterns and output names.
const (
	DefaultK6Pattern         = "results_*_run_*.json"
	DefaultK6Output          = "average_k6_metrics.json"
	DefaultLogsPattern       = "run_*_*_cloudwatch_logs.json"
	DefaultLogsOutput        = "average_cloudwatch_logs_metrics.json"
	DefaultResourcesOutput   = "average_cloudwatch_metrics.json"
	DefaultRunnerInputDir    = "test-results"
	DefaultRunnerOutputDir   = "extracted_metrics"
	DefaultTestDirMarker     = ":"
	DefaultK6CopyName        = "k6_metrics.json"
	DefaultLogsCopyName      = "cloudwatch_logs_metrics.json"
	DefaultResourcesCopyName = "cloudwatch_metrics.json"
	DefaultSummaryReportName = "extraction_summary.json"
)

// DefaultServices are the services whose per-service files get their own folder.
var DefaultServices = []string{"order", "product", "user", "payment"}

var (
	// ErrConfigNotFound indicates the config file does not exist
	ErrConfigNotFound = errors.New("config file not found")
	// ErrInvalidPattern indicates a pipeline file pattern is empty or malformed
	ErrInvalidPattern = errors.New("invalid file pattern")
)

// Pipeline configures one directory pipeline.
type Pipeline struct {
	Pattern string `yaml:"pattern"` // Glob for input files inside the folder
	Output  string `yaml:"output"`  // Name of the averaged output file
}

// Resources configures the CloudWatch resource metrics pipeline.
type Resources struct {
	Output string `yaml:"output"` // Name of the averaged output file
}

// Runner configures the batch run over a tree of test directories.
type Runner struct {
	InputDir      string `yaml:"input_dir"`       // Directory holding test directories
	OutputDir     string `yaml:"output_dir"`      // Mirrored output tree
	TestDirMarker string `yaml:"test_dir_marker"` // Substring a test directory name must contain
	K6Name        string `yaml:"k6_name"`         // Copied k6 average file name
	LogsName      string `yaml:"logs_name"`       // Copied logs average file name
	ResourcesName string `yaml:"resources_name"`  // Copied per-service resources file name
	SummaryName   string `yaml:"summary_name"`    // Summary report file name
}

// Config represents the whole configuration file.
//
// Example YAML format:
//
//	k6:
//	  pattern: results_*_run_*.json
//	  output: average_k6_metrics.json
//	services: [order, product, user, payment]
//	runner:
//	  input_dir: test-results
type Config struct {
	K6        Pipeline  `yaml:"k6"`
	Logs      Pipeline  `yaml:"logs"`
	Resources Resources `yaml:"resources"`
	Services  []string  `yaml:"services"`
	Runner    Runner    `yaml:"runner"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses a YAML configuration file.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	// Read file contents
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	for name, pattern := range map[string]string{"k6": c.K6.Pattern, "logs": c.Logs.Pattern} {
		if pattern == "" {
			return fmt.Errorf("%w: %s pattern is empty", ErrInvalidPattern, name)
		}
		if _, err := filepath.Match(pattern, ""); err != nil {
			return fmt.Errorf("%w: %s pattern %q: %v", ErrInvalidPattern, name, pattern, err)
		}
	}
	return nil
}

// applyDefaults fills every unset field with its default value.
func (c *Config) applyDefaults() {
	setDefault(&c.K6.Pattern, DefaultK6Pattern)
	setDefault(&c.K6.Output, DefaultK6Output)
	setDefault(&c.Logs.Pattern, DefaultLogsPattern)
	setDefault(&c.Logs.Output, DefaultLogsOutput)
	setDefault(&c.Resources.Output, DefaultResourcesOutput)

	if len(c.Services) == 0 {
		c.Services = append([]string(nil), DefaultServices...)
	}

	setDefault(&c.Runner.InputDir, DefaultRunnerInputDir)
	setDefault(&c.Runner.OutputDir, DefaultRunnerOutputDir)
	setDefault(&c.Runner.TestDirMarker, DefaultTestDirMarker)
	setDefault(&c.Runner.K6Name, DefaultK6CopyName)
	setDefault(&c.Runner.LogsName, DefaultLogsCopyName)
	setDefault(&c.Runner.ResourcesName, DefaultResourcesCopyName)
	setDefault(&c.Runner.SummaryName, DefaultSummaryReportName)
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
