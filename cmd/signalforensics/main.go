// Package main is the entry point for the SignalForensics report builder.
// It turns decrypted Signal Desktop exports into a single self-contained
// interactive HTML (or PDF) report.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gonssalu/SignalForensics/consts"
	"github.com/gonssalu/SignalForensics/internal/check"
	"github.com/gonssalu/SignalForensics/internal/config"
	"github.com/gonssalu/SignalForensics/internal/dataset"
	"github.com/gonssalu/SignalForensics/internal/report"
	"github.com/gonssalu/SignalForensics/internal/report/exporter"
	"github.com/gonssalu/SignalForensics/pkg/errors"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// Build information - set via ldflags during build
// These variables are linked to consts package for global access
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// init synchronizes build info to consts package for global access
func init() {
	consts.Version = Version
	consts.BuildTime = BuildTime
	consts.GitCommit = GitCommit
}

// configPath holds the path to the configuration file
var configPath string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "signalforensics",
	Short: "SignalForensics - Interactive report builder for Signal Desktop artifacts",
	Long: `SignalForensics builds a single self-contained interactive report page
from decrypted Signal Desktop exports: tables are grouped into a collapsible
category sidebar, and each table gets client-side sorting, searching,
pagination, and column reordering.`,
}

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the interactive report",
	Long: `Generate the report from a directory of decrypted CSV exports and/or an
already-decrypted SQLite database.

On first run, use --check to interactively set up your environment:
  signalforensics report --check

After initial setup, simply run:
  signalforensics report`,
	Run: runReport,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("SignalForensics %s\n", Version)
		fmt.Printf("  Build Time: %s\n", BuildTime)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
	},
}

func init() {
	// Disable auto-generated completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file path (default: "+config.DefaultConfigPath+")")

	// Add commands
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	// Report command flags
	reportCmd.Flags().StringP("input", "i", "", "directory of decrypted CSV exports (overrides config)")
	reportCmd.Flags().String("db", "", "decrypted SQLite database to read tables from (overrides config)")
	reportCmd.Flags().StringP("output", "o", "", "report file to write (overrides config)")
	reportCmd.Flags().StringP("format", "f", "", "export format: html or pdf (overrides config)")
	reportCmd.Flags().StringP("title", "t", "", "report title (overrides config)")
	reportCmd.Flags().Bool("debug", false, "enable debug logging")
	reportCmd.Flags().Bool("check", false, "run interactive environment check before generating")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runReport generates the report
func runReport(cmd *cobra.Command, args []string) {
	interactiveCheck, _ := cmd.Flags().GetBool("check")
	if interactiveCheck {
		checker := check.NewChecker(configPath)
		if err := checker.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Environment check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("\n✓ Environment check completed")
		return
	}

	// Run non-interactive preflight when the run depends on the config file
	// (input flags bypass it)
	inputFlag, _ := cmd.Flags().GetString("input")
	dbFlag, _ := cmd.Flags().GetString("db")
	if inputFlag == "" && dbFlag == "" {
		result := check.NewChecker(configPath).RunNonInteractive()
		if !result.Success {
			check.PrintCheckResult(result)
			os.Exit(1)
		}
		if len(result.Warnings) > 0 {
			check.PrintCheckResult(check.CheckResult{Warnings: result.Warnings})
			fmt.Fprintln(os.Stderr)
		}
	}

	consts.SetStartedAt(time.Now())

	// Load configuration
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(errors.ExitCodeConfigValidation)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting SignalForensics report build",
		zap.String("version", Version),
	)

	if err := buildReport(cfg); err != nil {
		logger.Fatal("Report build failed", zap.Error(err))
	}
}

// buildReport loads the datasets, assembles the report model, and writes the
// requested export format.
func buildReport(cfg *config.Config) error {
	col := &dataset.Collection{}

	if cfg.Report.InputDir != "" {
		csvCol, err := dataset.LoadDir(cfg.Report.InputDir, dataset.CSVSourceOptions{
			AttachmentsDir:  cfg.Report.AttachmentsDir,
			GeneralCategory: cfg.Report.GeneralCategory,
		})
		if err != nil {
			return err
		}
		col.Merge(csvCol)
	}

	if cfg.Report.Database != "" {
		dbCol, err := dataset.LoadDatabase(cfg.Report.Database)
		if err != nil {
			return err
		}
		col.Merge(dbCol)
	}

	rpt := report.Build(col, report.BuildOptions{
		Title:           cfg.Report.Title,
		GeneralCategory: cfg.Report.GeneralCategory,
		DefaultTable:    cfg.Report.DefaultTable,
	})

	manager := exporter.NewDefaultManager()
	format := exporter.ExportFormat(cfg.Report.Format)

	output := cfg.Report.Output
	if filepath.Ext(output) == "" {
		output = filepath.Join(output, manager.GenerateFilename(rpt, format))
	}

	if err := manager.ExportToFile(rpt, output, format); err != nil {
		return err
	}

	meta := rpt.Metadata()
	logger.Info("Report written",
		zap.String("report_id", meta.ReportID),
		zap.String("path", output),
		zap.Int("categories", meta.Categories),
		zap.Int("tables", meta.Tables),
		zap.Duration("elapsed", time.Since(consts.StartedAt())),
	)
	return nil
}

// loadConfig loads the configuration file (when present) and overlays
// command line flags on top.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultConfigPath
	}

	var cfg *config.Config
	if config.Exists(path) {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if configPath != "" {
		// An explicitly requested config file must exist
		return nil, fmt.Errorf("config file not found: %s", configPath)
	} else {
		cfg = config.Default()
	}

	// Override config with command line flags
	if input, _ := cmd.Flags().GetString("input"); input != "" {
		cfg.Report.InputDir = input
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Report.Database = db
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Report.Output = output
	}
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		cfg.Report.Format = format
	}
	if title, _ := cmd.Flags().GetString("title"); title != "" {
		cfg.Report.Title = title
	}
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		cfg.Logging.Level = "debug"
		cfg.Logging.Format = "text"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
