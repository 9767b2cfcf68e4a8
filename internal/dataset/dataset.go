// Package dataset loads categorized tabular datasets for report building.
// Sources are directories of CSV exports and decrypted SQLite databases;
// both produce the same ordered Collection structure.
package dataset

// GeneralCategory is the reserved category for datasets that live at the
// root of the export directory (or come from a database). The sidebar
// renders it without an identifier badge.
const GeneralCategory = "General"

// Dataset is a single named table: a header row plus data rows.
type Dataset struct {
	// ID is the report-wide unique table identifier, "<categoryID>_<fileBase>"
	ID string
	// Base is the file base name with any trailing UUID suffix stripped,
	// used for label lookup and special-case handling
	Base string
	// Label is the human-readable name shown in the sidebar
	Label string
	// Header holds the column names
	Header []string
	// Rows holds the data rows; rows may be ragged relative to Header
	Rows [][]string
	// HTMLColumns marks column indexes whose cells contain pre-built markup
	// (attachment links) and must not be escaped when rendered
	HTMLColumns map[int]bool
}

// Category is a named, ordered group of datasets.
type Category struct {
	// ID is the category identifier (relative directory path, or GeneralCategory)
	ID string
	// DisplayName is the human label; falls back to ID when no mapping exists
	DisplayName string
	// Datasets preserves source order
	Datasets []*Dataset
}

// Collection is an ordered set of categories. Order is structural: callers
// iterate Categories as-is and must not re-sort, since sidebar render order
// is defined to equal load order.
type Collection struct {
	Categories []*Category
}

// Category returns the category with the given ID, or nil.
func (c *Collection) Category(id string) *Category {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat
		}
	}
	return nil
}

// Merge appends the categories of other onto c, folding datasets of a
// category that exists in both into the existing one so its position in the
// order is kept.
func (c *Collection) Merge(other *Collection) {
	if other == nil {
		return
	}
	for _, cat := range other.Categories {
		if existing := c.Category(cat.ID); existing != nil {
			existing.Datasets = append(existing.Datasets, cat.Datasets...)
			continue
		}
		c.Categories = append(c.Categories, cat)
	}
}

// DatasetCount returns the total number of datasets across all categories.
func (c *Collection) DatasetCount() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Datasets)
	}
	return n
}
