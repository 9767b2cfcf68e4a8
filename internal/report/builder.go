package report

import (
	"html/template"
	"time"

	"go.uber.org/zap"

	"github.com/gonssalu/SignalForensics/internal/dataset"
	"github.com/gonssalu/SignalForensics/pkg/idgen"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// BuildOptions controls report assembly.
type BuildOptions struct {
	// Title is the document title; defaults to "Report"
	Title string
	// GeneralCategory is the reserved badge-less category ID; defaults to
	// the dataset package's sentinel
	GeneralCategory string
	// DefaultTable, when set, is selected on page load
	DefaultTable string
}

// Build assembles a Report from a loaded Collection: category and table
// order carry over unchanged, and every dataset is rendered into its table
// markup exactly once. A table ID reachable from two categories is logged
// and left alone; which category "owns" it is the caller's business.
func Build(col *dataset.Collection, opts BuildOptions) *Report {
	if opts.Title == "" {
		opts.Title = "Report"
	}
	if opts.GeneralCategory == "" {
		opts.GeneralCategory = dataset.GeneralCategory
	}

	r := &Report{
		ID:              idgen.NewReportID(),
		Title:           opts.Title,
		GeneratedAt:     time.Now(),
		Tables:          make(map[string]template.HTML),
		GeneralCategory: opts.GeneralCategory,
		DefaultTable:    opts.DefaultTable,
	}

	for _, cat := range col.Categories {
		category := Category{
			ID:          cat.ID,
			DisplayName: cat.DisplayName,
			Tables:      make([]TableRef, 0, len(cat.Datasets)),
		}
		for _, ds := range cat.Datasets {
			if _, dup := r.Tables[ds.ID]; dup {
				logger.Warn("Duplicate table identifier; links will share one container",
					zap.String("table_id", ds.ID),
					zap.String("category", cat.ID),
				)
			} else {
				r.Tables[ds.ID] = RenderTable(ds)
			}
			category.Tables = append(category.Tables, TableRef{
				TableID: ds.ID,
				Label:   ds.Label,
			})
		}
		r.Categories = append(r.Categories, category)
	}

	logger.Info("Report model assembled",
		zap.String("report_id", r.ID),
		zap.Int("categories", len(r.Categories)),
		zap.Int("tables", len(r.Tables)),
	)
	return r
}
