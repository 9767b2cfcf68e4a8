package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "signalforensics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Report", cfg.Report.Title)
	assert.Equal(t, "reports/full_report.html", cfg.Report.Output)
	assert.Equal(t, "html", cfg.Report.Format)
	assert.Equal(t, "General", cfg.Report.GeneralCategory)
	assert.Equal(t, "../attachments.noindex", cfg.Report.AttachmentsDir)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
report:
  title: "Case 42"
  input_dir: "exports"
  format: "pdf"
logging:
  level: "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Case 42", cfg.Report.Title)
	assert.Equal(t, "exports", cfg.Report.InputDir)
	assert.Equal(t, "pdf", cfg.Report.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields keep their defaults
	assert.Equal(t, "reports/full_report.html", cfg.Report.Output)
	assert.Equal(t, "General", cfg.Report.GeneralCategory)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "report: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
report:
  title: "File Title"
  input_dir: "exports"
`)

	t.Setenv("SIGNALFORENSICS_TITLE", "Env Title")
	t.Setenv("SIGNALFORENSICS_FORMAT", "pdf")
	t.Setenv("SIGNALFORENSICS_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Env Title", cfg.Report.Title)
	assert.Equal(t, "pdf", cfg.Report.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
	// Values without an override stay as loaded
	assert.Equal(t, "exports", cfg.Report.InputDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			"valid with input dir",
			func(c *Config) { c.Report.InputDir = "exports" },
			"",
		},
		{
			"valid with database only",
			func(c *Config) { c.Report.Database = "plaintext.sqlite" },
			"",
		},
		{
			"no source",
			func(c *Config) {},
			"input_dir or report.database",
		},
		{
			"bad format",
			func(c *Config) {
				c.Report.InputDir = "exports"
				c.Report.Format = "docx"
			},
			"unsupported report.format",
		},
		{
			"empty output",
			func(c *Config) {
				c.Report.InputDir = "exports"
				c.Report.Output = ""
			},
			"report.output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(filepath.Join(dir, "nope.yaml")))
	// Directories do not count
	assert.False(t, Exists(dir))

	path := writeConfig(t, "report: {}\n")
	assert.True(t, Exists(path))
}
