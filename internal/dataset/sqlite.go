package dataset

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gonssalu/SignalForensics/pkg/errors"
	"github.com/gonssalu/SignalForensics/pkg/logger"
)

// LoadDatabase reads every user table of an already-decrypted SQLite database
// into a Collection. All datasets land in the reserved general category, in
// sqlite_master order, so render order matches the schema's creation order.
func LoadDatabase(path string) (*Collection, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBConnection, "failed to open database", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBConnection, "failed to access database handle", err)
	}
	defer sqlDB.Close()

	// Single connection; the database is read sequentially.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	tables, err := listUserTables(db)
	if err != nil {
		return nil, err
	}

	cat := &Category{ID: GeneralCategory, DisplayName: GeneralCategory}
	for _, table := range tables {
		ds, err := loadTable(db, table)
		if err != nil {
			return nil, err
		}
		cat.Datasets = append(cat.Datasets, ds)
	}

	logger.Info("Loaded SQLite database",
		zap.String("path", path),
		zap.Int("tables", len(cat.Datasets)),
	)
	return &Collection{Categories: []*Category{cat}}, nil
}

// listUserTables returns the user table names in sqlite_master order,
// skipping SQLite's internal bookkeeping tables.
func listUserTables(db *gorm.DB) ([]string, error) {
	var tables []string
	err := db.Raw(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`,
	).Scan(&tables).Error
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBQuery, "failed to list tables", err)
	}
	return tables, nil
}

// loadTable reads all rows of a table into a Dataset.
func loadTable(db *gorm.DB, table string) (*Dataset, error) {
	rows, err := db.Raw(`SELECT * FROM ` + quoteIdent(table)).Rows()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBQuery,
			fmt.Sprintf("failed to read table %s", table), err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBQuery,
			fmt.Sprintf("failed to read columns of table %s", table), err)
	}

	ds := &Dataset{
		ID:     GeneralCategory + "_" + table,
		Base:   table,
		Label:  LabelFor(table),
		Header: columns,
	}

	values := make([]any, len(columns))
	scanArgs := make([]any, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDBQuery,
				fmt.Sprintf("failed to scan row of table %s", table), err)
		}
		row := make([]string, len(columns))
		for i, v := range values {
			row[i] = formatValue(v)
		}
		ds.Rows = append(ds.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDBQuery,
			fmt.Sprintf("failed to iterate table %s", table), err)
	}
	return ds, nil
}

// quoteIdent quotes a SQLite identifier; embedded double quotes are doubled.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// formatValue renders a scanned SQLite value as cell text.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(val)
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
