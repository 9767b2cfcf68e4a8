package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSidebarOrderPreservation(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "General", DisplayName: "General", Tables: []TableRef{
				{TableID: "General_t1", Label: "Table One"},
				{TableID: "General_t2", Label: "Table Two"},
			}},
			{ID: "Sales", DisplayName: "Sales", Tables: []TableRef{
				{TableID: "Sales_t3", Label: "Table Three"},
			}},
		},
		GeneralCategory: "General",
	}

	groups := BuildSidebar(rpt)
	require.Len(t, groups, 2)

	// Category render order equals input order
	assert.Equal(t, "General", groups[0].CategoryID)
	assert.Equal(t, "Sales", groups[1].CategoryID)

	// Table order within a category equals input order
	require.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "General_t1", groups[0].Entries[0].TableID)
	assert.Equal(t, "General_t2", groups[0].Entries[1].TableID)
	assert.Equal(t, "Table One", groups[0].Entries[0].Label)
}

func TestBuildSidebarBadgeSuppression(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "General", DisplayName: "General"},
			{ID: "abc-123", DisplayName: "Alice"},
		},
		GeneralCategory: "General",
	}

	groups := BuildSidebar(rpt)
	require.Len(t, groups, 2)

	// The reserved category renders without an identifier badge
	assert.False(t, groups[0].ShowBadge)
	// Every other category shows its raw ID
	assert.True(t, groups[1].ShowBadge)
	assert.Equal(t, "Alice", groups[1].DisplayName)
}

func TestBuildSidebarCustomGeneralCategory(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "Uncategorized", DisplayName: "Uncategorized"},
			{ID: "General", DisplayName: "General"},
		},
		GeneralCategory: "Uncategorized",
	}

	groups := BuildSidebar(rpt)
	require.Len(t, groups, 2)
	assert.False(t, groups[0].ShowBadge)
	// "General" is just an ordinary category here
	assert.True(t, groups[1].ShowBadge)
}

func TestBuildSidebarEmptyCategory(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "Empty", DisplayName: "Empty Conversation"},
		},
		GeneralCategory: "General",
	}

	groups := BuildSidebar(rpt)
	require.Len(t, groups, 1)
	// An empty category still renders as an openable group
	assert.Empty(t, groups[0].Entries)
	assert.True(t, groups[0].ShowBadge)
}

func TestBuildSidebarSharedTablePassThrough(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "A", DisplayName: "A", Tables: []TableRef{{TableID: "shared", Label: "One"}}},
			{ID: "B", DisplayName: "B", Tables: []TableRef{{TableID: "shared", Label: "Two"}}},
		},
		GeneralCategory: "General",
	}

	groups := BuildSidebar(rpt)
	require.Len(t, groups, 2)

	// Both links resolve to the same table; nothing is deduplicated
	assert.Equal(t, "shared", groups[0].Entries[0].TableID)
	assert.Equal(t, "shared", groups[1].Entries[0].TableID)
}

func TestTableOrderDeduplicates(t *testing.T) {
	rpt := &Report{
		Categories: []Category{
			{ID: "A", Tables: []TableRef{
				{TableID: "t1"},
				{TableID: "shared"},
			}},
			{ID: "B", Tables: []TableRef{
				{TableID: "shared"},
				{TableID: "t2"},
			}},
		},
	}

	// Each table container is emitted once, in first-reference order
	assert.Equal(t, []string{"t1", "shared", "t2"}, rpt.TableOrder())
}
