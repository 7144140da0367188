package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yungbote/registry-ingest/internal/report"
)

// utf8BOM makes spreadsheet applications detect the encoding instead of
// falling back to a legacy code page.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes the report rows to path as a UTF-8 (with BOM) CSV file,
// header first.
func WriteCSV(path string, rows []report.Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("write bom: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(report.Columns()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Values()); err != nil {
			return fmt.Errorf("write row %d: %w", row.RowNumber, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
