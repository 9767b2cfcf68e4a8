package dataset

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Curated labels for the well-known Signal export files. Anything else is
// derived from the file name.
var knownLabels = map[string]string{
	"calls_history":                    "Call History",
	"contacts":                         "Signal Contacts",
	"conversations":                    "Conversations",
	"groups_members":                   "Group Members",
	"group_changes":                    "Group Changes",
	"messages":                         "Messages",
	"messages_attachments":             "Message Attachments",
	"messages_reactions":               "Message Reactions",
	"messages_version_histories":       "Message Version Histories",
	"outgoing_group_messages_statuses": "Outgoing Group Message Statuses",
}

// Per-conversation exports carry a trailing "_<uuid>" suffix on the base name.
var uuidSuffixPattern = regexp.MustCompile(`^(.*?)(?:_[0-9a-fA-F-]{36})?$`)

var titleCaser = cases.Title(language.English)

// StripUUIDSuffix removes a trailing "_<uuid>" from a file base name.
func StripUUIDSuffix(base string) string {
	m := uuidSuffixPattern.FindStringSubmatch(base)
	if m == nil {
		return base
	}
	return m[1]
}

// LabelFor returns the display label for a dataset base name: the curated
// label when one exists, otherwise the snake_case name in Title Case.
func LabelFor(base string) string {
	if label, ok := knownLabels[base]; ok {
		return label
	}
	return titleCaser.String(strings.ReplaceAll(base, "_", " "))
}
