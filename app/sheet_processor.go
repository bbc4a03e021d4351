package app

import (
	"fmt"
	"log/slog"

	"accuracycheck/adapters/similarity"
	"accuracycheck/domain/report"
	"accuracycheck/domain/verdict"
	"accuracycheck/domain/workbook"
	"accuracycheck/internal/errors"
	"accuracycheck/ports"
)

// Designated columns compared on every sheet
const (
	ActiveVoiceColumn  = "Active Voice"
	PassiveVoiceColumn = "Passive Voice"
)

// SheetProcessor scores every row of one sheet
type SheetProcessor struct {
	scorer ports.SimilarityScorer
	log    *slog.Logger
}

// NewSheetProcessor creates a sheet processor using scorer
func NewSheetProcessor(scorer ports.SimilarityScorer, log *slog.Logger) *SheetProcessor {
	return &SheetProcessor{scorer: scorer, log: log}
}

// Process returns one result row per data row, in sheet order. A missing designated
// column or any row failure aborts the sheet and no rows are returned.
func (p *SheetProcessor) Process(sheet workbook.Sheet) ([]report.Row, error) {
	if sheet.Header == nil {
		p.log.Warn("sheet has no header row, skipping", "sheet", sheet.Name)
		return nil, nil
	}
	for _, col := range []string{ActiveVoiceColumn, PassiveVoiceColumn} {
		if !sheet.HasColumn(col) {
			return nil, errors.MissingColumn(sheet.Name, col)
		}
	}

	rows := make([]report.Row, 0, len(sheet.Rows))
	for i, row := range sheet.Rows {
		rowNum := i + 1
		active := similarity.Normalize(row[ActiveVoiceColumn])
		passive := similarity.Normalize(row[PassiveVoiceColumn])

		score, err := p.scorer.Score(active, passive)
		if err != nil {
			return nil, errors.InSheet(sheet.Name, errors.Wrap(err, fmt.Sprintf("row %d", rowNum)))
		}

		rows = append(rows, report.Row{
			Sheet:   sheet.Name,
			Row:     rowNum,
			Score:   score,
			Verdict: verdict.Decide(score),
		})
	}

	p.log.Debug("sheet processed", "sheet", sheet.Name, "rows", len(rows))
	return rows, nil
}
