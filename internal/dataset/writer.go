package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperifyio/htmlcsv/internal/extract"
)

// FileName builds the per-table output file name from the source base name,
// the table's document-order index, and the optional derived table name.
func FileName(baseName string, index int, tableName string) string {
	if tableName == "" {
		return fmt.Sprintf("%s.table_%d.csv", baseName, index)
	}
	return fmt.Sprintf("%s.table_%d.%s.csv", baseName, index, tableName)
}

// Write serializes one table's records to a CSV file under dir and returns
// the written path. The header row is the column list in order; missing
// record fields render as empty strings. A table with zero records writes
// nothing and returns an empty path — the caller reports that as an
// informational outcome, not an error. An existing file at the target path
// is overwritten.
func Write(dir, baseName string, index int, tableName string, columns []string, records []extract.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	path := filepath.Join(dir, FileName(baseName, index, tableName))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(columns))
	for _, rec := range records {
		for i, col := range columns {
			row[i] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
