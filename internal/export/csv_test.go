package export

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/yungbote/registry-ingest/internal/report"
)

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.csv")
	rows := []report.Row{
		{RowNumber: 1, StatementNumber: "99/2023/1", CadNumber: "77:01:0001001:10", HolderNames: "ООО «Застройщик»"},
		{RowNumber: 2, StatementNumber: "99/2023/1", CadNumber: "77:01:0001001:10", DealNumber: "77-77/011-2021-100"},
	}

	if err := WriteCSV(path, rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(raw, utf8BOM) {
		t.Fatal("output does not start with a UTF-8 BOM")
	}

	records, err := csv.NewReader(bytes.NewReader(raw[len(utf8BOM):])).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records: want=3 got=%d", len(records))
	}
	header := report.Columns()
	if len(records[0]) != len(header) || records[0][0] != header[0] {
		t.Fatalf("header mismatch: got=%v", records[0])
	}
	if records[1][0] != "1" || records[1][2] != "77:01:0001001:10" {
		t.Fatalf("first data row: got=%v", records[1])
	}
	if records[1][7] != "ООО «Застройщик»" {
		t.Fatalf("non-ascii cell: got=%q", records[1][7])
	}
	if records[2][12] != "77-77/011-2021-100" {
		t.Fatalf("deal number cell: got=%q", records[2][12])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteCSV(path, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	records, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(raw, utf8BOM))).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected header only, got %d records", len(records))
	}
}
