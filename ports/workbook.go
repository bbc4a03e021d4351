package ports

import (
	"context"

	"accuracycheck/domain/report"
	"accuracycheck/domain/workbook"
)

// WorkbookReader loads every sheet of a spreadsheet file, in workbook order
type WorkbookReader interface {
	ReadWorkbook(ctx context.Context, path string) (*workbook.Workbook, error)
}

// ReportWriter persists a report table as a new workbook at path.
// Implementations must not leave a partial file behind on failure.
type ReportWriter interface {
	WriteReport(ctx context.Context, path string, table *report.Table) error
}

// SimilarityScorer scores two normalized strings in [0, 1]
type SimilarityScorer interface {
	Score(a, b string) (float64, error)
}
