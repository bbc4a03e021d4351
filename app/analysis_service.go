package app

import (
	"context"
	"log/slog"
	"time"

	"accuracycheck/domain/report"
	"accuracycheck/internal/errors"
	"accuracycheck/internal/validation"
	"accuracycheck/ports"
)

// AnalysisService runs the sheet processor over a whole workbook and writes the report
type AnalysisService struct {
	reader    ports.WorkbookReader
	writer    ports.ReportWriter
	processor *SheetProcessor
	log       *slog.Logger
}

// AnalysisResult is the outcome of a successful run
type AnalysisResult struct {
	InputPath  string
	OutputPath string
	Table      *report.Table
	Summary    Summary
	RuntimeMs  int64
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(reader ports.WorkbookReader, writer ports.ReportWriter, processor *SheetProcessor, log *slog.Logger) *AnalysisService {
	return &AnalysisService{
		reader:    reader,
		writer:    writer,
		processor: processor,
		log:       log,
	}
}

// Analyze validates path, scores every sheet in workbook order and writes the
// "Results" workbook next to the input. Nothing is written if any step fails.
func (s *AnalysisService) Analyze(ctx context.Context, path string) (*AnalysisResult, error) {
	startTime := time.Now()

	inputPath, err := validation.ValidateWorkbookPath(path)
	if err != nil {
		s.log.Error("error validating Excel path", "path", path, "code", errors.GetCode(err), "error", err)
		return nil, err
	}

	wb, err := s.reader.ReadWorkbook(ctx, inputPath)
	if err != nil {
		s.log.Error("error reading workbook", "path", inputPath, "sheet", errors.GetSheet(err), "code", errors.GetCode(err), "error", err)
		return nil, err
	}
	if len(wb.Sheets) == 0 {
		s.log.Warn("workbook has no sheets", "path", inputPath)
	}

	table := &report.Table{}
	for _, sheet := range wb.Sheets {
		if err := ctx.Err(); err != nil {
			s.log.Warn("analysis canceled", "sheet", sheet.Name, "error", err)
			return nil, err
		}
		rows, err := s.processor.Process(sheet)
		if err != nil {
			s.log.Error("error processing sheet", "sheet", sheet.Name, "code", errors.GetCode(err), "error", err)
			return nil, err
		}
		table.Append(rows...)
	}
	if table.Len() == 0 {
		s.log.Warn("no rows to report, writing an empty results sheet", "path", inputPath)
	}

	summary, err := Summarize(table)
	if err != nil {
		s.log.Error("error summarizing results", "error", err)
		return nil, errors.Computation("summarize results", err)
	}

	outputPath := validation.ReportPath(inputPath)
	if err := s.writer.WriteReport(ctx, outputPath, table); err != nil {
		s.log.Error("error writing report", "path", outputPath, "code", errors.GetCode(err), "error", err)
		return nil, err
	}

	result := &AnalysisResult{
		InputPath:  inputPath,
		OutputPath: outputPath,
		Table:      table,
		Summary:    summary,
		RuntimeMs:  time.Since(startTime).Milliseconds(),
	}
	s.log.Info("results saved",
		"output", outputPath,
		"sheets", len(wb.Sheets),
		"rows", summary.Rows,
		"passed", summary.Passed,
		"failed", summary.Failed,
		"mean_score", summary.Mean,
		"runtime_ms", result.RuntimeMs)
	return result, nil
}
