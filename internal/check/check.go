// Package check provides interactive environment checking and initialization.
// It helps users set up their local SignalForensics configuration properly.
package check

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"

	"github.com/gonssalu/SignalForensics/internal/config"
)

// CheckResult represents the result of a non-interactive environment check
type CheckResult struct {
	// Success indicates whether all required checks passed
	Success bool
	// Errors contains critical errors that prevent report generation
	Errors []string
	// Warnings contains non-critical issues that don't block generation
	Warnings []string
	// Suggestions contains helpful tips for fixing issues
	Suggestions []string
}

// Checker handles environment checking and initialization
type Checker struct {
	// configPath is the configuration file to check or create
	configPath string
	// theme for consistent prompt styling
	theme *huh.Theme
}

// NewChecker creates a new environment checker
func NewChecker(configPath string) *Checker {
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	return &Checker{
		configPath: configPath,
		theme:      huh.ThemeCharm(),
	}
}

// Run executes the full interactive environment check
func (c *Checker) Run() error {
	c.printHeader()

	fmt.Println()
	printSection("Checking configuration file")
	created, err := c.checkConfigFile()
	if err != nil {
		return fmt.Errorf("config file check failed: %w", err)
	}

	fmt.Println()
	printSection("Validating configuration")
	if err := c.validateConfig(created); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// RunNonInteractive performs the preflight checks without prompting.
// Missing pieces are reported instead of created.
func (c *Checker) RunNonInteractive() CheckResult {
	result := CheckResult{Success: true}

	if !config.Exists(c.configPath) {
		result.Success = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("configuration file not found: %s", c.configPath))
		result.Suggestions = append(result.Suggestions,
			"run with --check to create a starter configuration interactively")
		return result
	}

	cfg, err := config.Load(c.configPath)
	if err != nil {
		result.Success = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if cfg.Report.InputDir != "" {
		if info, err := os.Stat(cfg.Report.InputDir); err != nil || !info.IsDir() {
			result.Success = false
			result.Errors = append(result.Errors,
				fmt.Sprintf("report.input_dir does not exist: %s", cfg.Report.InputDir))
		}
	}
	if cfg.Report.Database != "" {
		if _, err := os.Stat(cfg.Report.Database); err != nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("report.database does not exist: %s", cfg.Report.Database))
		}
	}

	return result
}

// PrintCheckResult prints a non-interactive check result to stderr
func PrintCheckResult(result CheckResult) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	for _, e := range result.Errors {
		red.Fprintf(os.Stderr, "[ERROR] ")
		fmt.Fprintln(os.Stderr, e)
	}
	for _, w := range result.Warnings {
		yellow.Fprintf(os.Stderr, "[WARNING] ")
		fmt.Fprintln(os.Stderr, w)
	}
	for _, s := range result.Suggestions {
		fmt.Fprintf(os.Stderr, "  hint: %s\n", s)
	}
}

// validateConfig loads and validates the configuration, printing the outcome
func (c *Checker) validateConfig(justCreated bool) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		if justCreated {
			// The starter template needs input paths filled in before it
			// validates; point that out instead of failing the check.
			fmt.Printf("  %s %s\n", color.YellowString("!"),
				"starter configuration created; set report.input_dir before generating")
			return nil
		}
		red.Printf("  ✗ ")
		fmt.Println(err.Error())
		return err
	}

	green.Printf("  ✓ ")
	fmt.Printf("%s is valid (format: %s, output: %s)\n",
		c.configPath, cfg.Report.Format, cfg.Report.Output)
	return nil
}

// printHeader prints the welcome header
func (c *Checker) printHeader() {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginBottom(1)

	fmt.Println(titleStyle.Render("🔍 SignalForensics Environment Check"))
}

// printSection prints a section header
func printSection(title string) {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("15"))
	fmt.Println(style.Render(title + "..."))
}
