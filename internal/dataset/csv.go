package dataset

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/gonssalu/SignalForensics/pkg/errors"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

const (
	// conversationsFile maps conversation IDs to display names
	conversationsFile = "conversations.csv"
	// attachmentsBase is the dataset whose third column is rewritten into links
	attachmentsBase = "messages_attachments"
	// attachmentColumn is the zero-based index of the attachment path column
	attachmentColumn = 2
	// mimeColumn is the zero-based index of the attachment MIME type column
	mimeColumn = 3
)

// CSVSourceOptions controls how a CSV export directory is loaded.
type CSVSourceOptions struct {
	// AttachmentsDir is the href prefix for attachment links, relative to
	// the report location
	AttachmentsDir string
	// GeneralCategory overrides the reserved root category ID
	GeneralCategory string
}

// defaults fills unset options with the values the Signal exporter uses.
func (o CSVSourceOptions) defaults() CSVSourceOptions {
	if o.AttachmentsDir == "" {
		o.AttachmentsDir = "../attachments.noindex"
	}
	if o.GeneralCategory == "" {
		o.GeneralCategory = GeneralCategory
	}
	return o
}

// LoadDir walks a directory of CSV exports and builds an ordered Collection.
// The root directory becomes the reserved general category; each subdirectory
// becomes a category keyed by its relative path. Within a category, datasets
// appear in file-name order, so load order is deterministic and render order
// follows it end to end.
func LoadDir(root string, opts CSVSourceOptions) (*Collection, error) {
	opts = opts.defaults()

	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatasetRead, "cannot open export directory", err)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeDatasetRead, fmt.Sprintf("not a directory: %s", root))
	}

	conversationNames := loadConversationNames(filepath.Join(root, conversationsFile))

	col := &Collection{}
	byID := make(map[string]*Category)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Every directory becomes a category, even when it holds no datasets;
		// empty categories render as openable, contentless panels.
		if d.IsDir() {
			categoryID := relCategoryID(root, path, opts.GeneralCategory)
			if byID[categoryID] == nil {
				displayName := categoryID
				if name, ok := conversationNames[categoryID]; ok && name != "" {
					displayName = name
				}
				cat := &Category{ID: categoryID, DisplayName: displayName}
				byID[categoryID] = cat
				col.Categories = append(col.Categories, cat)
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(d.Name()), ".csv") {
			return nil
		}

		// The parent directory is always visited before its files.
		categoryID := relCategoryID(root, filepath.Dir(path), opts.GeneralCategory)
		cat := byID[categoryID]

		ds, err := loadCSVFile(path, categoryID, opts)
		if err != nil {
			return err
		}
		cat.Datasets = append(cat.Datasets, ds)
		return nil
	})
	if walkErr != nil {
		if _, ok := walkErr.(*errors.AppError); ok {
			return nil, walkErr
		}
		return nil, errors.Wrap(errors.ErrCodeDatasetRead, "failed to walk export directory", walkErr)
	}

	logger.Info("Loaded CSV export directory",
		zap.String("root", root),
		zap.Int("categories", len(col.Categories)),
		zap.Int("datasets", col.DatasetCount()),
	)
	return col, nil
}

// relCategoryID maps a directory to its category ID: the slash-separated
// path relative to the export root, with the root itself reserved.
func relCategoryID(root, dir, general string) string {
	rel, err := filepath.Rel(root, dir)
	if err != nil || rel == "." {
		return general
	}
	return filepath.ToSlash(rel)
}

// loadCSVFile reads one export file into a Dataset. Export files carry a
// one-line preamble above the header row; both are consumed here.
func loadCSVFile(path, categoryID string, opts CSVSourceOptions) (*Dataset, error) {
	records, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New(errors.ErrCodeDatasetMalformed,
			fmt.Sprintf("%s: missing header row", path))
	}

	fileBase := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base := StripUUIDSuffix(fileBase)

	ds := &Dataset{
		ID:     categoryID + "_" + fileBase,
		Base:   base,
		Label:  LabelFor(base),
		Header: records[1],
		Rows:   records[2:],
	}

	if base == attachmentsBase && len(ds.Header) > mimeColumn {
		rewriteAttachmentLinks(ds, opts.AttachmentsDir)
	}
	return ds, nil
}

// readCSV reads all records from a CSV file. Field counts are not enforced
// because the preamble line and ragged forensic rows are expected.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatasetRead, "cannot open CSV file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatasetMalformed,
			fmt.Sprintf("cannot parse CSV file %s", path), err)
	}
	return records, nil
}

// loadConversationNames reads the conversations export and returns the
// ID -> display name mapping. A missing or unreadable file is not an error;
// categories then fall back to their raw IDs.
func loadConversationNames(path string) map[string]string {
	records, err := readCSV(path)
	if err != nil {
		logger.Debug("No conversation name mapping available", zap.String("path", path))
		return nil
	}
	if len(records) < 2 {
		return nil
	}

	header := records[1]
	idIdx, nameIdx := -1, -1
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "ID":
			idIdx = i
		case "Name":
			nameIdx = i
		}
	}
	if idIdx < 0 || nameIdx < 0 {
		logger.Warn("Conversations file has no ID/Name columns", zap.String("path", path))
		return nil
	}

	names := make(map[string]string)
	for _, row := range records[2:] {
		if len(row) <= idIdx || len(row) <= nameIdx {
			continue
		}
		id := strings.TrimSpace(row[idIdx])
		if id == "" {
			continue
		}
		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			name = id
		}
		names[id] = name
	}
	return names
}

// rewriteAttachmentLinks replaces the attachment path column with anchor
// markup pointing into the decrypted attachments directory. The file
// extension is recovered from the MIME type column.
func rewriteAttachmentLinks(ds *Dataset, attachmentsDir string) {
	for _, row := range ds.Rows {
		if len(row) <= attachmentColumn {
			continue
		}
		path := strings.TrimSpace(row[attachmentColumn])
		if path == "" {
			continue
		}
		ext := ""
		if len(row) > mimeColumn {
			ext = mimeToExtension(strings.TrimSpace(row[mimeColumn]))
		}
		href := attachmentsDir + "/" + path + ext
		row[attachmentColumn] = fmt.Sprintf(`<a href="%s" target="_blank">%s%s</a>`,
			htmlEscape(href), htmlEscape(path), htmlEscape(ext))
	}
	if ds.HTMLColumns == nil {
		ds.HTMLColumns = make(map[int]bool)
	}
	ds.HTMLColumns[attachmentColumn] = true
}

// mimeToExtension converts a MIME type to a file extension, preferring the
// shortest candidate for stable output (ExtensionsByType order is unspecified).
func mimeToExtension(mimeType string) string {
	if mimeType == "" {
		return ""
	}
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	sort.Slice(exts, func(i, j int) bool {
		if len(exts[i]) != len(exts[j]) {
			return len(exts[i]) < len(exts[j])
		}
		return exts[i] < exts[j]
	})
	return exts[0]
}

// htmlEscape escapes a string for safe embedding in markup built by hand.
func htmlEscape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "'", "&#39;")
	return s
}
