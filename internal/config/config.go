// Package config provides configuration management for the application.
// It supports YAML configuration files with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonssalu/SignalForensics/pkg/errors"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// DefaultConfigPath is the conventional configuration file location
const DefaultConfigPath = "config/signalforensics.yaml"

// Default configuration values
const (
	defaultTitle           = "Report"
	defaultOutputFile      = "reports/full_report.html"
	defaultFormat          = "html"
	defaultGeneralCategory = "General"
	defaultAttachmentsDir  = "../attachments.noindex"
)

// envPrefix is the prefix for environment variable overrides
const envPrefix = "SIGNALFORENSICS_"

// Config represents the complete application configuration
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging logger.Config `yaml:"logging"`
}

// ReportConfig holds report generation configuration
type ReportConfig struct {
	// Title is the document title
	Title string `yaml:"title"`
	// InputDir is the directory of decrypted CSV exports
	InputDir string `yaml:"input_dir"`
	// Database is an already-decrypted SQLite database to read instead of
	// (or in addition to) InputDir
	Database string `yaml:"database"`
	// Output is the report file path
	Output string `yaml:"output"`
	// Format is the export format (html, pdf)
	Format string `yaml:"format"`
	// GeneralCategory is the reserved category rendered without an ID badge
	GeneralCategory string `yaml:"general_category"`
	// DefaultTable, when set, is the table selected on page load
	DefaultTable string `yaml:"default_table"`
	// AttachmentsDir is the href prefix for attachment links, relative to
	// the report location
	AttachmentsDir string `yaml:"attachments_dir"`
}

// Default returns a configuration populated with default values
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			Title:           defaultTitle,
			Output:          defaultOutputFile,
			Format:          defaultFormat,
			GeneralCategory: defaultGeneralCategory,
			AttachmentsDir:  defaultAttachmentsDir,
		},
		Logging: logger.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Exists reports whether a configuration file is present at the given path
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads the configuration file, applies defaults and environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigNotFound,
			fmt.Sprintf("cannot read config file %s", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigParse,
			fmt.Sprintf("cannot parse config file %s", path), err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides overlays SIGNALFORENSICS_* environment variables on top
// of file values.
func (c *Config) applyEnvOverrides() {
	overrides := map[string]*string{
		"TITLE":     &c.Report.Title,
		"INPUT_DIR": &c.Report.InputDir,
		"DATABASE":  &c.Report.Database,
		"OUTPUT":    &c.Report.Output,
		"FORMAT":    &c.Report.Format,
		"LOG_LEVEL": &c.Logging.Level,
		"LOG_FILE":  &c.Logging.File,
	}
	for suffix, target := range overrides {
		if v, ok := os.LookupEnv(envPrefix + suffix); ok {
			*target = v
		}
	}
}

// Validate checks the configuration for consistency
func (c *Config) Validate() error {
	if c.Report.InputDir == "" && c.Report.Database == "" {
		return errors.New(errors.ErrCodeConfigInvalid,
			"either report.input_dir or report.database must be set")
	}
	switch c.Report.Format {
	case "html", "pdf":
	default:
		return errors.New(errors.ErrCodeConfigInvalid,
			fmt.Sprintf("unsupported report.format %q (expected html or pdf)", c.Report.Format))
	}
	if c.Report.Output == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "report.output must not be empty")
	}
	return nil
}
