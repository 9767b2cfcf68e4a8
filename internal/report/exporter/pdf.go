// Package exporter provides report export functionality with pluggable exporters.
package exporter

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/gonssalu/SignalForensics/internal/report"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// PDFOptions contains configuration for PDF generation
type PDFOptions struct {
	// Paper dimensions in inches (A4 landscape: 11.69 x 8.27)
	PaperWidth  float64
	PaperHeight float64

	// Margins in inches
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	// Header and footer
	DisplayHeaderFooter bool

	// Print background colors and images
	PrintBackground bool

	// Scale of the webpage rendering (1.0 = 100%)
	Scale float64

	// Timeout for PDF generation
	Timeout time.Duration
}

// DefaultPDFOptions returns default PDF options. Landscape A4: forensic
// tables are wide and portrait truncates them.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		PaperWidth:  11.69,
		PaperHeight: 8.27,

		MarginTop:    0.59, // ~15mm
		MarginBottom: 0.59, // ~15mm
		MarginLeft:   0.39, // ~10mm
		MarginRight:  0.39, // ~10mm

		DisplayHeaderFooter: true,
		PrintBackground:     true,
		Scale:               1.0,
		Timeout:             120 * time.Second,
	}
}

// PDFExporter exports reports to PDF format using Chrome headless. The
// interactive page is no use on paper, so it prints a flattened rendition:
// every table visible, grouped under its category heading.
type PDFExporter struct {
	options PDFOptions
}

// NewPDFExporter creates a new PDF exporter with default options
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{
		options: DefaultPDFOptions(),
	}
}

// NewPDFExporterWithOptions creates a new PDF exporter with custom options
func NewPDFExporterWithOptions(opts PDFOptions) *PDFExporter {
	return &PDFExporter{
		options: opts,
	}
}

// Export exports a report to PDF format
// Note: This returns binary PDF data as a string for interface compatibility.
// For binary PDF data, use ExportToPDF instead.
func (e *PDFExporter) Export(rpt *report.Report) (string, error) {
	pdfData, err := e.ExportToPDF(rpt)
	if err != nil {
		return "", err
	}
	return string(pdfData), nil
}

// Name returns the human-readable name of this exporter
func (e *PDFExporter) Name() string {
	return "PDF"
}

// FileExtension returns the file extension for PDF files
func (e *PDFExporter) FileExtension() string {
	return ".pdf"
}

// ExportToPDF exports a report to PDF format and returns binary data
func (e *PDFExporter) ExportToPDF(rpt *report.Report) ([]byte, error) {
	startTime := time.Now()

	logger.Info("Starting PDF export",
		zap.String("report_id", rpt.ID),
		zap.String("title", rpt.Title),
		zap.Int("tables", len(rpt.Tables)),
		zap.Duration("timeout", e.options.Timeout),
	)

	html := e.generatePrintHTML(rpt)

	// Write HTML to a temporary file (avoids data URL size limits)
	tmpFile, err := os.CreateTemp("", "signalforensics-pdf-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(html); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp HTML: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp HTML: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), e.options.Timeout)
	defer cancel()

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	headerTemplate, footerTemplate := e.generateHeaderFooter(rpt)

	var pdfData []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+tmpPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdfData, _, printErr = page.PrintToPDF().
				WithPaperWidth(e.options.PaperWidth).
				WithPaperHeight(e.options.PaperHeight).
				WithMarginTop(e.options.MarginTop).
				WithMarginBottom(e.options.MarginBottom).
				WithMarginLeft(e.options.MarginLeft).
				WithMarginRight(e.options.MarginRight).
				WithDisplayHeaderFooter(e.options.DisplayHeaderFooter).
				WithHeaderTemplate(headerTemplate).
				WithFooterTemplate(footerTemplate).
				WithPrintBackground(e.options.PrintBackground).
				WithScale(e.options.Scale).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		logger.Error("PDF export failed",
			zap.String("report_id", rpt.ID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to print report to PDF: %w", err)
	}

	logger.Info("PDF export completed",
		zap.String("report_id", rpt.ID),
		zap.Int("pdf_size", len(pdfData)),
		zap.Duration("duration", time.Since(startTime)),
	)
	return pdfData, nil
}

// generatePrintHTML creates a print-oriented rendition of the report: no
// sidebar, no scripts, every table laid out sequentially under its category.
func (e *PDFExporter) generatePrintHTML(rpt *report.Report) string {
	title := rpt.Title
	if title == "" {
		title = "Report"
	}

	var body strings.Builder
	for _, cat := range rpt.Categories {
		body.WriteString(`    <section class="category">` + "\n")
		body.WriteString(fmt.Sprintf("      <h2>%s</h2>\n", escapeHTMLText(cat.DisplayName)))
		if cat.ID != rpt.GeneralCategory {
			body.WriteString(fmt.Sprintf("      <p class=\"category-id\">%s</p>\n",
				escapeHTMLText(cat.ID)))
		}
		for _, ref := range cat.Tables {
			markup, ok := rpt.Tables[ref.TableID]
			if !ok {
				continue
			}
			body.WriteString(fmt.Sprintf("      <h3>%s</h3>\n", escapeHTMLText(ref.Label)))
			body.WriteString(string(markup))
			body.WriteString("\n")
		}
		body.WriteString("    </section>\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <title>%s</title>
    <style>
      body {
        font-family: Arial, sans-serif;
        font-size: 9px;
        margin: 0;
      }
      h2 {
        font-size: 14px;
        border-bottom: 2px solid #333;
        padding-bottom: 4px;
        margin: 16px 0 4px;
      }
      h3 {
        font-size: 11px;
        margin: 12px 0 4px;
      }
      .category-id {
        font-size: 8px;
        color: #666;
        margin: 0 0 8px;
      }
      .category {
        page-break-before: always;
      }
      .category:first-of-type {
        page-break-before: avoid;
      }
      table {
        border-collapse: collapse;
        width: 100%%;
        table-layout: auto;
        margin-bottom: 8px;
      }
      th,
      td {
        border: 1px solid #999;
        padding: 2px 4px;
        text-align: center;
        word-break: break-word;
      }
      th {
        background-color: #eee;
      }
      tr {
        page-break-inside: avoid;
      }
    </style>
  </head>
  <body>
%s  </body>
</html>
`, escapeHTMLText(title), body.String())
}

// generateHeaderFooter creates the Chrome print header and footer templates.
// Font sizes are in px and must be set inline; Chrome ignores external styles
// in these templates.
func (e *PDFExporter) generateHeaderFooter(rpt *report.Report) (string, string) {
	title := rpt.Title
	if title == "" {
		title = "Report"
	}

	header := fmt.Sprintf(`<div style="font-size:8px; width:100%%; text-align:center; color:#666;">%s</div>`,
		escapeHTMLText(title))
	footer := fmt.Sprintf(`<div style="font-size:8px; width:100%%; display:flex; justify-content:space-between; padding:0 40px; color:#666;">
  <span>Generated %s</span>
  <span>Page <span class="pageNumber"></span> of <span class="totalPages"></span></span>
</div>`, rpt.GeneratedAt.Format("2006-01-02 15:04:05"))

	return header, footer
}
