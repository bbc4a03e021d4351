package excel

import (
	"bytes"
	"os"
	"strconv"

	"accuracycheck/internal/errors"

	"github.com/shakinm/xlsReader/xls"
	"github.com/shakinm/xlsReader/xls/record"
	"github.com/shakinm/xlsReader/xls/structure"
)

// readXLSSheets reads a legacy BIFF (.xls) workbook
func readXLSSheets(path string) ([]rawSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO("failed to read Excel file", err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.IO("failed to open Excel file", err)
	}

	sheets := make([]rawSheet, 0, wb.GetNumberSheets())
	for i := 0; i < wb.GetNumberSheets(); i++ {
		sheet, err := wb.GetSheet(i)
		if err != nil {
			return nil, errors.IO("failed to read sheet "+strconv.Itoa(i), err)
		}
		if sheet == nil {
			continue
		}
		rows := sheet.GetRows()
		grid := make([][]string, 0, len(rows))
		for _, row := range rows {
			grid = append(grid, xlsRowValues(row.GetCols()))
		}
		sheets = append(sheets, rawSheet{name: sheet.GetName(), rows: grid})
	}
	return sheets, nil
}

// xlsRowValues renders a BIFF row as the same strings excelize reports for .xlsx cells
func xlsRowValues(cols []structure.CellData) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = xlsCellText(col)
	}
	return out
}

func xlsCellText(cell structure.CellData) string {
	switch cell.(type) {
	case nil, *record.FakeBlank, *record.Blank:
		return ""
	}
	return cell.GetString()
}
