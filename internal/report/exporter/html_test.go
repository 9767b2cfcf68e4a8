package exporter

import (
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gonssalu/SignalForensics/internal/report"
)

func testReport() *report.Report {
	stub := template.HTML(`<table class="display"><thead><tr><th>ID</th></tr></thead><tbody></tbody></table>`)
	return &report.Report{
		ID:          "rpt-test",
		Title:       "Case 42",
		GeneratedAt: time.Now(),
		Categories: []report.Category{
			{ID: "General", DisplayName: "General", Tables: []report.TableRef{
				{TableID: "General_messages", Label: "Messages"},
				{TableID: "General_calls_history", Label: "Call History"},
			}},
			{ID: "conv-1", DisplayName: "Alice", Tables: []report.TableRef{
				{TableID: "conv-1_messages", Label: "Messages"},
			}},
		},
		Tables: map[string]template.HTML{
			"General_messages":      stub,
			"General_calls_history": stub,
			"conv-1_messages":       stub,
		},
		GeneralCategory: "General",
	}
}

func TestHTMLExporterStructure(t *testing.T) {
	html, err := NewHTMLExporter().Export(testReport())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>Case 42</title>")

	// One accordion button per category, in order
	genIdx := strings.Index(html, `<button class="accordion">General</button>`)
	aliceIdx := strings.Index(html, `<button class="accordion">Alice</button>`)
	require.NotEqual(t, -1, genIdx)
	require.NotEqual(t, -1, aliceIdx)
	assert.Less(t, genIdx, aliceIdx)

	// The reserved category omits the ID badge; the conversation shows its ID
	assert.Equal(t, 1, strings.Count(html, `class="sidebar-id"`))
	assert.Contains(t, html, `<div class="sidebar-id">conv-1</div>`)

	// One hidden container per table
	assert.Contains(t, html, `<div id="General_messages" class="table-container">`)
	assert.Contains(t, html, `<div id="General_calls_history" class="table-container">`)
	assert.Contains(t, html, `<div id="conv-1_messages" class="table-container">`)
	assert.Equal(t, 3, strings.Count(html, ` class="table-container">`))
}

func TestHTMLExporterGridConfig(t *testing.T) {
	html, err := NewHTMLExporter().Export(testReport())
	require.NoError(t, err)

	// The grid is rebuilt on every selection
	assert.Contains(t, html, "destroy: true")
	assert.Contains(t, html, "autoWidth: false")
	assert.Contains(t, html, "scrollX: true")
	assert.Contains(t, html, "responsive: false")
	assert.Contains(t, html, "colReorder: true")
	assert.Contains(t, html, "fixedHeader: true")
	assert.Contains(t, html, `className: "dt-center"`)
	assert.Contains(t, html, `search: "🔍"`)

	// A single selection function drives the whole page
	assert.Equal(t, 1, strings.Count(html, "function showTable"))
}

func TestHTMLExporterSingleVisibility(t *testing.T) {
	html, err := NewHTMLExporter().Export(testReport())
	require.NoError(t, err)

	// Everything is hidden before the selected container is shown
	hideIdx := strings.Index(html, `$(".table-container").hide();`)
	showIdx := strings.Index(html, "$(container).show();")
	require.NotEqual(t, -1, hideIdx)
	require.NotEqual(t, -1, showIdx)
	assert.Less(t, hideIdx, showIdx)

	// Unknown identifiers leave the page untouched
	assert.Contains(t, html, "if (!container)")
}

func TestHTMLExporterIndependentToggle(t *testing.T) {
	html, err := NewHTMLExporter().Export(testReport())
	require.NoError(t, err)

	// Each accordion handler touches only its own button state and the
	// panel directly following it
	assert.Contains(t, html, `this.classList.toggle("active")`)
	assert.Contains(t, html, "this.nextElementSibling")

	// No bulk panel operations: toggling one category must never collapse
	// or expand its siblings
	assert.NotContains(t, html, `$(".panel")`)
	assert.NotContains(t, html, `getElementsByClassName("panel")`)
	assert.NotContains(t, html, `querySelectorAll(".panel")`)
}

func TestHTMLExporterAssetIntegrity(t *testing.T) {
	html, err := NewHTMLExporter().Export(testReport())
	require.NoError(t, err)

	assert.Contains(t, html, bootstrapCSSURL)
	assert.Contains(t, html, bootstrapJSURL)
	assert.Contains(t, html, datatablesCSSURL)
	assert.Contains(t, html, datatablesJSURL)
	// Every CDN asset carries its integrity hash
	assert.Equal(t, 4, strings.Count(html, `integrity="sha384-`))
	assert.Equal(t, 4, strings.Count(html, `crossorigin="anonymous"`))
}

func TestHTMLExporterDefaultTableBoot(t *testing.T) {
	rpt := testReport()

	html, err := NewHTMLExporter().Export(rpt)
	require.NoError(t, err)
	// No default configured: the page waits for the first click
	assert.NotContains(t, html, "DOMContentLoaded")

	rpt.DefaultTable = "General_messages"
	html, err = NewHTMLExporter().Export(rpt)
	require.NoError(t, err)
	assert.Contains(t, html, "DOMContentLoaded")
	assert.Contains(t, html, "showTable('General_messages');")
}

func TestHTMLExporterSharedContainerEmittedOnce(t *testing.T) {
	rpt := &report.Report{
		ID:    "rpt-shared",
		Title: "Shared",
		Categories: []report.Category{
			{ID: "A", DisplayName: "A", Tables: []report.TableRef{{TableID: "shared", Label: "One"}}},
			{ID: "B", DisplayName: "B", Tables: []report.TableRef{{TableID: "shared", Label: "Two"}}},
		},
		Tables: map[string]template.HTML{
			"shared": `<table class="display"></table>`,
		},
		GeneralCategory: "General",
	}

	html, err := NewHTMLExporter().Export(rpt)
	require.NoError(t, err)

	// Two links, one container
	assert.Equal(t, 2, strings.Count(html, `showTable('shared')`))
	assert.Equal(t, 1, strings.Count(html, `<div id="shared" class="table-container">`))
}

func TestHTMLExporterEscaping(t *testing.T) {
	rpt := &report.Report{
		ID:    "rpt-esc",
		Title: `Case <"42"> & more`,
		Categories: []report.Category{
			{ID: "conv<1>", DisplayName: "<Alice>", Tables: []report.TableRef{
				{TableID: "it's_t", Label: "A & B"},
			}},
		},
		Tables: map[string]template.HTML{
			"it's_t": `<table class="display"></table>`,
		},
		GeneralCategory: "General",
	}

	html, err := NewHTMLExporter().Export(rpt)
	require.NoError(t, err)

	assert.NotContains(t, html, `<title>Case <"42"> & more</title>`)
	assert.Contains(t, html, "&lt;Alice&gt;")
	assert.Contains(t, html, "A &amp; B")
	// Single quotes in table identifiers cannot break the JS string literal
	assert.NotContains(t, html, `showTable('it's_t')`)
}

func TestHTMLExporterMeta(t *testing.T) {
	e := NewHTMLExporter()
	assert.Equal(t, "HTML", e.Name())
	assert.Equal(t, ".html", e.FileExtension())
}
