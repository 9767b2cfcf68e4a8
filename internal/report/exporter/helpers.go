// Package exporter provides report export functionality with pluggable exporters.
package exporter

import (
	"strings"
)

// escapeJSString escapes a string for safe embedding inside a single-quoted
// JavaScript string literal.
func escapeJSString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "'", "\\'")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	// Escape script tags to prevent breaking out of the surrounding script
	s = strings.ReplaceAll(s, "</script>", "<\\/script>")
	return s
}

// escapeHTMLAttr escapes a string for safe HTML attribute embedding
func escapeHTMLAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}

// escapeHTMLText escapes a string for safe HTML text embedding
func escapeHTMLText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
