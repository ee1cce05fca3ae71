package testutil

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook saves a temporary xlsx workbook whose first sheet holds
// the given rows and returns its path. Row and cell order follow the
// slice order, starting at A1.
func WriteWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for r, cells := range rows {
		for c, value := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("CoordinatesToCellName(%d, %d) error = %v", c+1, r+1, err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				t.Fatalf("SetCellValue(%s) error = %v", cell, err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), "vocab.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs(%s) error = %v", path, err)
	}
	return path
}

// ZipEntryNames returns the set of file names inside a zip archive,
// e.g. a generated .apkg package.
func ZipEntryNames(t *testing.T, path string) map[string]bool {
	t.Helper()

	reader, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("Failed to open %s as zip: %v", path, err)
	}
	defer reader.Close()

	names := make(map[string]bool, len(reader.File))
	for _, file := range reader.File {
		names[file.Name] = true
	}
	return names
}
