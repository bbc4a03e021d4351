package excel

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"accuracycheck/domain/report"
	"accuracycheck/internal/errors"
	"accuracycheck/ports"

	"github.com/xuri/excelize/v2"
)

// ReportWriter writes the report table into a new workbook with a single "Results" sheet
type ReportWriter struct {
	log *slog.Logger
}

var _ ports.ReportWriter = (*ReportWriter)(nil)

// NewReportWriter creates a report writer
func NewReportWriter(log *slog.Logger) *ReportWriter {
	return &ReportWriter{log: log}
}

// WriteReport builds the workbook in memory, writes it to a temp file next to path
// and renames it into place. The temp file is removed on any failure.
func (w *ReportWriter) WriteReport(ctx context.Context, path string, table *report.Table) error {
	f, err := buildReport(table)
	if err != nil {
		return errors.IO("failed to build report", err)
	}
	defer f.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return errors.IO("failed to create report file", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.WriteTo(tmp); err != nil {
		return errors.IO("failed to write report", err)
	}
	if err := tmp.Sync(); err != nil {
		return errors.IO("failed to flush report", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.IO("failed to close report", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		committed = true
		return errors.IO("failed to move report into place", err)
	}
	committed = true

	w.log.Debug("report written", "path", path, "rows", table.Len())
	return nil
}

func buildReport(table *report.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, report.SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(report.Columns))
	for i, c := range report.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(report.SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, row := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		values := row.Values()
		if err := f.SetSheetRow(report.SheetName, cell, &values); err != nil {
			f.Close()
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	for i := range report.Columns {
		col := columnName(i + 1)
		if err := f.SetColWidth(report.SheetName, col, col, 18); err != nil {
			f.Close()
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}
	return f, nil
}
