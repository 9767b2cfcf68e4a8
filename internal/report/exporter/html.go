// Package exporter provides report export functionality with pluggable exporters.
package exporter

import (
	"fmt"
	"strings"

	"github.com/gonssalu/SignalForensics/internal/report"
)

// UI library assets loaded by the generated page. These are the only network
// fetches the document ever performs; every navigation action afterwards is
// client-local.
const (
	bootstrapCSSURL = "https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/5.3.0/css/bootstrap.min.css"
	bootstrapCSSSRI = "sha384-9ndCyUaIbzAi2FUVXJi0CjmCapSmO7SnpJef0486qhLnuZ2cdeRhO02iuK6FUUVM"
	bootstrapJSURL  = "https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/5.3.0/js/bootstrap.bundle.min.js"
	bootstrapJSSRI  = "sha384-geWF76RCwLtnZ8qwWowPQNguL3RmwHVBC9FhGdlKrxdiJJigb/j/68SIy3Te4Bkz"

	// DataTables bundle: jQuery + DataTables core + ColReorder + FixedHeader
	// + Responsive, Bootstrap 5 styling
	datatablesCSSURL = "https://cdn.datatables.net/v/bs5/jq-3.7.0/dt-2.2.2/cr-2.0.4/fh-4.0.1/r-3.0.4/datatables.min.css"
	datatablesCSSSRI = "sha384-9kXxIkqaeTB2jlXfmYzLXIefzYGqX8RGgMbDg9+Roneo63NYnX/xPycCG3H/1cvf"
	datatablesJSURL  = "https://cdn.datatables.net/v/bs5/jq-3.7.0/dt-2.2.2/cr-2.0.4/fh-4.0.1/r-3.0.4/datatables.min.js"
	datatablesJSSRI  = "sha384-UM0p7faWDVvD4vxGqXgVlWKb5yVNBtJabHeESJ0Iamwa5UoqMj8Kl5nvmm/38ZBr"
)

// HTMLExporter exports reports to a self-contained interactive HTML page:
// collapsible category sidebar on the left, one table at a time on the
// right, DataTables behavior applied on selection.
type HTMLExporter struct{}

// NewHTMLExporter creates a new HTML exporter
func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Export renders the report into a single HTML document.
func (e *HTMLExporter) Export(rpt *report.Report) (string, error) {
	sidebar := e.renderSidebar(rpt)
	containers := e.renderContainers(rpt)
	boot := e.renderBootScript(rpt)
	return e.generateHTMLTemplate(rpt, sidebar, containers, boot), nil
}

// Name returns the human-readable name of this exporter
func (e *HTMLExporter) Name() string {
	return "HTML"
}

// FileExtension returns the file extension for HTML files
func (e *HTMLExporter) FileExtension() string {
	return ".html"
}

// renderSidebar emits one accordion group per category, in category order.
// Groups for the reserved general category omit the identifier badge; every
// other group shows its raw ID for traceability. Entries within a group keep
// their table order.
func (e *HTMLExporter) renderSidebar(rpt *report.Report) string {
	var sb strings.Builder
	for _, group := range report.BuildSidebar(rpt) {
		sb.WriteString(`      <button class="accordion">`)
		sb.WriteString(escapeHTMLText(group.DisplayName))
		sb.WriteString("</button>\n")
		sb.WriteString("      <div class=\"panel\">\n")
		if group.ShowBadge {
			sb.WriteString(`        <div class="sidebar-id">`)
			sb.WriteString(escapeHTMLText(group.CategoryID))
			sb.WriteString("</div>\n")
		}
		for _, entry := range group.Entries {
			sb.WriteString(fmt.Sprintf("        <a onclick=\"showTable('%s')\">%s</a>\n",
				escapeHTMLAttr(escapeJSString(entry.TableID)),
				escapeHTMLText(entry.Label)))
		}
		sb.WriteString("      </div>\n")
	}
	return sb.String()
}

// renderContainers emits one hidden container per table, in first-reference
// order. A table referenced from two categories still gets a single
// container, so both sidebar links resolve to the same element.
func (e *HTMLExporter) renderContainers(rpt *report.Report) string {
	var sb strings.Builder
	for _, tableID := range rpt.TableOrder() {
		sb.WriteString(fmt.Sprintf("      <div id=\"%s\" class=\"table-container\">\n",
			escapeHTMLAttr(tableID)))
		sb.WriteString(string(rpt.Tables[tableID]))
		sb.WriteString("\n      </div>\n")
	}
	return sb.String()
}

// renderBootScript emits the optional default-table selection. With no
// default configured every container starts hidden and the page waits for
// the first sidebar click.
func (e *HTMLExporter) renderBootScript(rpt *report.Report) string {
	if rpt.DefaultTable == "" {
		return ""
	}
	return fmt.Sprintf(`
      document.addEventListener("DOMContentLoaded", function () {
        showTable('%s');
      });`, escapeJSString(rpt.DefaultTable))
}

// generateHTMLTemplate creates the final HTML document
func (e *HTMLExporter) generateHTMLTemplate(rpt *report.Report, sidebar, containers, bootScript string) string {
	title := rpt.Title
	if title == "" {
		title = "Report"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>%s</title>
    <link
      href="%s"
      rel="stylesheet"
      integrity="%s"
      crossorigin="anonymous"
    />
    <link
      href="%s"
      rel="stylesheet"
      integrity="%s"
      crossorigin="anonymous"
    />

    <script
      src="%s"
      integrity="%s"
      crossorigin="anonymous"
    ></script>
    <script
      src="%s"
      integrity="%s"
      crossorigin="anonymous"
    ></script>

    <style>
      body {
        font-family: Arial, sans-serif;
        display: flex;
        margin: 0;
        height: 100vh;
        overflow: hidden;
      }
      .sidebar {
        width: 250px;
        background-color: #333;
        color: white;
        padding: 10px;
        overflow-y: auto;
      }
      .content {
        flex: 1;
        padding: 20px;
        overflow-y: auto;
      }
      .accordion {
        background-color: #444;
        color: white;
        cursor: pointer;
        padding: 12px;
        width: 100%%;
        text-align: left;
        border: none;
        outline: none;
        transition: background-color 0.2s ease;
        font-size: 16px;
      }
      .accordion:hover {
        background-color: #555;
      }
      .accordion:after {
        content: "\25B6"; /* Right arrow */
        float: right;
        font-size: 14px;
        transition: transform 0.2s ease;
      }
      .accordion.active:after {
        content: "\25BC"; /* Down arrow */
      }
      .panel {
        padding-left: 10px;
        display: none;
        overflow: hidden;
        background-color: #222;
      }
      .panel a {
        display: block;
        padding: 8px;
        color: white;
        text-decoration: none;
        border-bottom: 1px solid #444;
        cursor: pointer;
      }
      .panel a:hover {
        background-color: #444;
      }
      .sidebar-id {
        font-size: 0.75em;
        padding: 8px;
        color: #f0f0f0;
        background-color: #222;
        border-left: 4px solid #444;
        margin-bottom: 5px;
        cursor: default;
      }
      .table-container {
        display: none;
        overflow-x: auto;
        padding: 10px;
      }
    </style>
  </head>
  <body>
    <div class="sidebar">
%s    </div>

    <div class="content">
%s    </div>

    <script>
      // Collapsible sidebar categories: each accordion toggles only its own
      // panel, so any number of categories can be open at once.
      const acc = document.getElementsByClassName("accordion");
      for (let i = 0; i < acc.length; i++) {
        acc[i].addEventListener("click", function () {
          this.classList.toggle("active");
          const panel = this.nextElementSibling;
          if (panel.style.display === "block") {
            panel.style.display = "none";
          } else {
            panel.style.display = "block";
          }
        });
      }

      // Shows exactly one table and (re)applies its grid behavior. The grid
      // is destroyed and rebuilt on every selection: DataTables computes
      // column widths and fixed-header offsets from live geometry, which is
      // wrong for a container that was hidden at initialization time.
      function showTable(tableId) {
        $(".table-container").hide();
        const container = document.getElementById(tableId);
        if (!container) {
          // Unknown identifier: nothing becomes visible, nothing throws
          return;
        }
        $(container).show();

        $(container)
          .find("table")
          .addClass("table table-bordered table-striped")
          .DataTable({
            destroy: true,
            autoWidth: false,
            scrollX: true,
            responsive: false,
            colReorder: true,
            fixedHeader: true,
            paging: true,
            lengthChange: true,
            searching: true,
            ordering: true,
            info: true,
            columnDefs: [{ targets: "_all", className: "dt-center" }],
            language: {
              search: "🔍",
              lengthMenu: "Displaying _MENU_ entries per page",
              zeroRecords: "No entries found",
              info: "Displaying _START_ to _END_ of _TOTAL_ total entries",
              infoEmpty: "No available data",
              infoFiltered: "(filtered from _MAX_ total entries)",
              paginate: {
                first: "First",
                last: "Last",
                next: "Next",
                previous: "Previous",
              },
            },
          });
      }%s
    </script>
  </body>
</html>
`,
		escapeHTMLText(title),
		bootstrapCSSURL, bootstrapCSSSRI,
		datatablesCSSURL, datatablesCSSSRI,
		bootstrapJSURL, bootstrapJSSRI,
		datatablesJSURL, datatablesJSSRI,
		sidebar,
		containers,
		bootScript,
	)
}
