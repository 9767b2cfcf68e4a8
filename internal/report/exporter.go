package report

// ExportMetadata represents metadata about an exported report
type ExportMetadata struct {
	ReportID    string `json:"report_id"`
	Title       string `json:"title"`
	GeneratedAt string `json:"generated_at"`
	Generator   string `json:"generator"`
	Categories  int    `json:"categories"`
	Tables      int    `json:"tables"`
}

// Metadata returns metadata about the report for export manifests and logs.
func (r *Report) Metadata() *ExportMetadata {
	return &ExportMetadata{
		ReportID:    r.ID,
		Title:       r.Title,
		GeneratedAt: r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
		Generator:   "SignalForensics",
		Categories:  len(r.Categories),
		Tables:      len(r.Tables),
	}
}
