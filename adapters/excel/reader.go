package excel

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"accuracycheck/domain/workbook"
	"accuracycheck/internal/errors"
	"accuracycheck/ports"

	"github.com/xuri/excelize/v2"
)

// DataReader reads .xlsx and .xls workbooks into header-keyed rows
type DataReader struct {
	log *slog.Logger
}

var _ ports.WorkbookReader = (*DataReader)(nil)

// NewDataReader creates a reader that logs timing to log
func NewDataReader(log *slog.Logger) *DataReader {
	return &DataReader{log: log}
}

// ReadWorkbook reads every sheet of the file at path in workbook order
func (r *DataReader) ReadWorkbook(ctx context.Context, path string) (*workbook.Workbook, error) {
	startTime := time.Now()

	var (
		raw []rawSheet
		err error
	)
	switch detectFileType(path) {
	case fileTypeXLS:
		raw, err = readXLSSheets(path)
	default:
		raw, err = readXLSXSheets(ctx, path)
	}
	if err != nil {
		return nil, err
	}

	wb := &workbook.Workbook{Path: path, Sheets: make([]workbook.Sheet, 0, len(raw))}
	for _, s := range raw {
		wb.Sheets = append(wb.Sheets, buildSheet(s.name, s.rows))
	}

	r.log.Debug("workbook read",
		"path", path,
		"sheets", len(wb.Sheets),
		"elapsed_ms", float64(time.Since(startTime).Nanoseconds())/1e6)
	return wb, nil
}

// rawSheet is a sheet as a grid of cell strings
type rawSheet struct {
	name string
	rows [][]string
}

func detectFileType(path string) fileType {
	if strings.ToLower(filepath.Ext(path)) == ".xls" {
		return fileTypeXLS
	}
	return fileTypeXLSX
}

func readXLSXSheets(ctx context.Context, path string) ([]rawSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.IO("failed to open Excel file", err)
	}
	defer f.Close()

	var sheets []rawSheet
	for _, name := range f.GetSheetList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, errors.InSheet(name, errors.IO("failed to read sheet", err))
		}
		sheets = append(sheets, rawSheet{name: name, rows: rows})
	}
	return sheets, nil
}

// buildSheet turns a cell grid into a header plus data rows. Fully blank rows are
// skipped; the first non-blank row is the header. Empty cells are stored as nil.
func buildSheet(name string, grid [][]string) workbook.Sheet {
	sheet := workbook.Sheet{Name: name}

	for _, cells := range grid {
		if isBlankRow(cells) {
			continue
		}
		if sheet.Header == nil {
			sheet.Header = make([]string, len(cells))
			for i, h := range cells {
				sheet.Header[i] = strings.TrimSpace(h)
			}
			continue
		}

		row := make(workbook.Row, len(sheet.Header))
		for i, h := range sheet.Header {
			if _, dup := row[h]; dup {
				continue // first column with a given header wins
			}
			if i < len(cells) && cells[i] != "" {
				row[h] = cells[i]
			} else {
				row[h] = nil
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// columnName converts a 1-based column number to its letter name, e.g. 27 -> "AA"
func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return fmt.Sprintf("col%d", col)
	}
	return name
}
