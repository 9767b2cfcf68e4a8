package check

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
)

// TemplateConfig is the starter configuration written by the interactive check.
const TemplateConfig = `# SignalForensics report configuration
report:
  # Document title shown in the browser tab
  title: "Report"

  # Directory of decrypted CSV exports (subdirectories become sidebar categories)
  input_dir: ""

  # Optional: an already-decrypted SQLite database to read tables from
  database: ""

  # Report file to write
  output: "reports/full_report.html"

  # Export format: html or pdf
  format: "html"

  # Reserved category rendered without an identifier badge
  general_category: "General"

  # Optional: table identifier to select when the page loads
  default_table: ""

  # Attachment link prefix, relative to the report location
  attachments_dir: "../attachments.noindex"

logging:
  level: "info"
  format: "text"
  # file: "logs/signalforensics.log"
`

// checkConfigFile verifies the configuration file exists, offering to create
// it from the starter template when missing. Returns whether it was created.
func (c *Checker) checkConfigFile() (bool, error) {
	if fileExists(c.configPath) {
		printFileStatus(c.configPath, true, false)
		return false, nil
	}

	printFileStatus(c.configPath, false, false)

	confirm, err := c.confirmCreate(c.configPath)
	if err != nil {
		return false, fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirm {
		return false, nil
	}

	if err := ensureDir(c.configPath); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(c.configPath, []byte(TemplateConfig), 0644); err != nil {
		return false, fmt.Errorf("failed to write config template: %w", err)
	}

	printFileStatus(c.configPath, true, true)
	return true, nil
}

// confirmCreate asks the user whether to create a missing file
func (c *Checker) confirmCreate(path string) (bool, error) {
	var confirm bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Create %s from template?", path)).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		WithTheme(c.theme).
		Run()
	return confirm, err
}

// fileExists reports whether path exists and is a regular file
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ensureDir creates the parent directory of path if needed
func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// printFileStatus prints the status of a checked file
func printFileStatus(path string, ok, created bool) {
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	switch {
	case created:
		green.Printf("  ✓ ")
		fmt.Printf("%s (created)\n", path)
	case ok:
		green.Printf("  ✓ ")
		fmt.Println(path)
	default:
		yellow.Printf("  ! ")
		fmt.Printf("%s (missing)\n", path)
	}
}
