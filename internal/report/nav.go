package report

// SidebarGroup is one collapsible accordion group in the sidebar.
type SidebarGroup struct {
	// CategoryID is the raw category key
	CategoryID string
	// DisplayName is the accordion button label
	DisplayName string
	// ShowBadge controls whether the raw category ID is rendered under the
	// button for traceability; suppressed for the reserved general category
	ShowBadge bool
	// Entries are the table links, in category order
	Entries []TableRef
}

// BuildSidebar derives the sidebar render structure from the report's
// categories. Groups come out in category order and entries in table order;
// nothing is sorted, deduplicated, or filtered. If two categories reference
// the same table ID, both links resolve to the same container; that is the
// caller's arrangement and is passed through untouched.
func BuildSidebar(r *Report) []SidebarGroup {
	groups := make([]SidebarGroup, 0, len(r.Categories))
	for _, cat := range r.Categories {
		groups = append(groups, SidebarGroup{
			CategoryID:  cat.ID,
			DisplayName: cat.DisplayName,
			ShowBadge:   cat.ID != r.GeneralCategory,
			Entries:     cat.Tables,
		})
	}
	return groups
}
