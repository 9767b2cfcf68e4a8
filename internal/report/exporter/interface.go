// Package exporter provides report export functionality with pluggable exporters.
package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/gonssalu/SignalForensics/internal/report"
	"github.com/gonssalu/SignalForensics/pkg/errors"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// ExportFormat represents the export format type
type ExportFormat string

const (
	// ExportFormatHTML represents the interactive single-page HTML format
	ExportFormatHTML ExportFormat = "html"
	// ExportFormatPDF represents the print-oriented PDF format
	ExportFormatPDF ExportFormat = "pdf"
)

// ReportExporter defines the interface for report exporters
type ReportExporter interface {
	// Export exports a report to string content
	Export(rpt *report.Report) (string, error)
	// Name returns the human-readable name of the exporter (e.g., "HTML")
	Name() string
	// FileExtension returns the file extension for this format (e.g., ".html")
	FileExtension() string
}

// NewDefaultManager creates an export manager with the standard exporters
// registered.
func NewDefaultManager() *ExportManager {
	m := NewExportManager()
	m.Register(ExportFormatHTML, NewHTMLExporter())
	m.Register(ExportFormatPDF, NewPDFExporter())
	return m
}

// ExportManager manages all registered exporters
type ExportManager struct {
	exporters map[ExportFormat]ReportExporter
	mu        sync.RWMutex
}

// NewExportManager creates a new export manager
func NewExportManager() *ExportManager {
	return &ExportManager{
		exporters: make(map[ExportFormat]ReportExporter),
	}
}

// Register registers an exporter for a specific format
func (m *ExportManager) Register(format ExportFormat, exp ReportExporter) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exporters[format] = exp
	logger.Debug("Registered report exporter",
		zap.String("format", string(format)),
		zap.String("name", exp.Name()),
	)
}

// Export exports a report using the specified format
func (m *ExportManager) Export(rpt *report.Report, format ExportFormat) (string, error) {
	m.mu.RLock()
	exp, ok := m.exporters[format]
	m.mu.RUnlock()

	if !ok {
		return "", errors.New(errors.ErrCodeExportFormat,
			fmt.Sprintf("unsupported export format: %s", format))
	}

	logger.Debug("Exporting report",
		zap.String("report_id", rpt.ID),
		zap.String("format", string(format)),
		zap.String("exporter", exp.Name()),
	)

	content, err := exp.Export(rpt)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeExportRender,
			fmt.Sprintf("failed to export report with %s exporter", exp.Name()), err)
	}

	return content, nil
}

// ExportToFile exports a report to a file
func (m *ExportManager) ExportToFile(rpt *report.Report, outputPath string, format ExportFormat) error {
	content, err := m.Export(rpt, format)
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrCodeExportWrite, "failed to create output directory", err)
	}

	// Write file
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeExportWrite, "failed to write report file", err)
	}

	logger.Info("Report exported to file",
		zap.String("report_id", rpt.ID),
		zap.String("format", string(format)),
		zap.String("path", outputPath),
	)

	return nil
}

// GenerateFilename generates a filename for the exported report
func (m *ExportManager) GenerateFilename(rpt *report.Report, format ExportFormat) string {
	m.mu.RLock()
	exp, ok := m.exporters[format]
	m.mu.RUnlock()

	baseName := rpt.Title
	if baseName == "" {
		baseName = "full_report"
	}
	baseName = sanitizeFilename(baseName)

	// Get extension from exporter if available
	if ok {
		return baseName + exp.FileExtension()
	}

	// Fallback to format-based extension
	switch format {
	case ExportFormatHTML:
		return baseName + ".html"
	case ExportFormatPDF:
		return baseName + ".pdf"
	default:
		return baseName + ".txt"
	}
}

// SupportedFormats returns a list of all supported export formats
func (m *ExportManager) SupportedFormats() []ExportFormat {
	m.mu.RLock()
	defer m.mu.RUnlock()

	formats := make([]ExportFormat, 0, len(m.exporters))
	for format := range m.exporters {
		formats = append(formats, format)
	}
	return formats
}

// GetExporter returns the exporter for a specific format
func (m *ExportManager) GetExporter(format ExportFormat) (ReportExporter, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	exp, ok := m.exporters[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeExportFormat,
			fmt.Sprintf("no exporter registered for format: %s", format))
	}
	return exp, nil
}

// sanitizeFilename removes unsafe characters from filename
func sanitizeFilename(name string) string {
	// Replace unsafe characters
	unsafe := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " "}
	result := name
	for _, char := range unsafe {
		result = strings.ReplaceAll(result, char, "_")
	}

	// Remove consecutive underscores
	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}

	// Trim underscores
	result = strings.Trim(result, "_")

	// Limit length
	if len(result) > 100 {
		result = result[:100]
	}

	return result
}
