package report

import (
	"html/template"
	"strings"

	"github.com/gonssalu/SignalForensics/internal/dataset"
)

// RenderTable materializes a dataset into table markup ready for grid
// initialization. Cells are escaped unless the dataset marks their column as
// pre-built markup (attachment links). Rows shorter than the header are
// padded with empty cells so the grid always sees a rectangular table.
func RenderTable(ds *dataset.Dataset) template.HTML {
	var sb strings.Builder

	sb.WriteString(`<table class="display">` + "\n")

	sb.WriteString("<thead><tr>")
	for _, h := range ds.Header {
		sb.WriteString("<th>")
		sb.WriteString(escapeCell(h))
		sb.WriteString("</th>")
	}
	sb.WriteString("</tr></thead>\n")

	sb.WriteString("<tbody>\n")
	for _, row := range ds.Rows {
		sb.WriteString("<tr>")
		for i := range ds.Header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString("<td>")
			if ds.HTMLColumns[i] {
				sb.WriteString(cell)
			} else {
				sb.WriteString(escapeCell(cell))
			}
			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>")

	return template.HTML(sb.String())
}

// escapeCell escapes cell text for embedding in table markup.
func escapeCell(s string) string {
	return template.HTMLEscapeString(s)
}
