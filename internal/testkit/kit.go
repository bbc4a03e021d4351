package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// SheetFixture describes one worksheet: a header row followed by data rows
type SheetFixture struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// VoiceSheet builds a fixture with the "Active Voice" / "Passive Voice" header
func VoiceSheet(name string, pairs ...[2]interface{}) SheetFixture {
	sheet := SheetFixture{Name: name, Header: []string{"ID", "Active Voice", "Passive Voice"}}
	for i, p := range pairs {
		sheet.Rows = append(sheet.Rows, []interface{}{i + 1, p[0], p[1]})
	}
	return sheet
}

// WriteWorkbook saves the sheets, in order, to a new .xlsx under t.TempDir() and returns its path
func WriteWorkbook(t *testing.T, filename string, sheets ...SheetFixture) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), s.Name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(s.Name); err != nil {
			t.Fatalf("new sheet %s: %v", s.Name, err)
		}

		if s.Header != nil {
			header := make([]interface{}, len(s.Header))
			for j, h := range s.Header {
				header[j] = h
			}
			if err := f.SetSheetRow(s.Name, "A1", &header); err != nil {
				t.Fatalf("write header: %v", err)
			}
		}
		for j, row := range s.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, j+2)
			values := row
			if err := f.SetSheetRow(s.Name, cell, &values); err != nil {
				t.Fatalf("write row: %v", err)
			}
		}
	}

	path := filepath.Join(t.TempDir(), filename)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

// ReadSheet returns every row of sheet in the workbook at path
func ReadSheet(t *testing.T, path, sheet string) [][]string {
	t.Helper()

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read sheet %s: %v", sheet, err)
	}
	return rows
}
