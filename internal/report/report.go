// Package report builds the interactive report model from loaded datasets:
// an ordered category/table navigation structure plus pre-rendered table
// markup, consumed by the exporters.
package report

import (
	"html/template"
	"time"
)

// TableRef points a sidebar entry at a rendered table.
type TableRef struct {
	// TableID is the report-wide unique key used as the container DOM id
	// and as the selection target
	TableID string
	// Label is the link text shown in the sidebar
	Label string
}

// Category is a named, ordered group of table references. The slice order is
// the sidebar render order; it is never re-sorted.
type Category struct {
	// ID is the unique category key
	ID string
	// DisplayName is the accordion button label
	DisplayName string
	// Tables preserves author-specified order
	Tables []TableRef
}

// Report is the complete input to the exporters. Categories is an explicit
// ordered sequence so render order is a structural guarantee rather than an
// iteration-order accident; Tables is keyed lookup only.
type Report struct {
	// ID identifies this build run (logs, export metadata)
	ID string
	// Title is the document title
	Title string
	// GeneratedAt is the build timestamp
	GeneratedAt time.Time

	// Categories in sidebar order
	Categories []Category
	// Tables maps table ID to its pre-rendered markup. The markup is opaque
	// to this package: header and body rows are already materialized.
	Tables map[string]template.HTML

	// GeneralCategory is the reserved category ID rendered without an
	// identifier badge
	GeneralCategory string
	// DefaultTable, when set, is selected when the page loads; otherwise
	// every table container starts hidden
	DefaultTable string
}

// TableOrder returns the table IDs in first-reference order across all
// categories, with duplicates dropped. Exporters use it to emit each table
// container exactly once, in a deterministic position.
func (r *Report) TableOrder() []string {
	seen := make(map[string]bool, len(r.Tables))
	order := make([]string, 0, len(r.Tables))
	for _, cat := range r.Categories {
		for _, ref := range cat.Tables {
			if seen[ref.TableID] {
				continue
			}
			seen[ref.TableID] = true
			order = append(order, ref.TableID)
		}
	}
	return order
}
