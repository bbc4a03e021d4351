package report

import "accuracycheck/domain/verdict"

// SheetName is the name of the single sheet written to the output workbook
const SheetName = "Results"

// Columns is the fixed header of the report, in output order
var Columns = []string{"Sheet Name", "Row", "Cosine Similarity", "Result"}

// Row is the outcome for one spreadsheet row
type Row struct {
	Sheet   string
	Row     int // 1-based position within the sheet's data rows
	Score   float64
	Verdict verdict.Verdict
}

// Values returns the row's cells in Columns order
func (r Row) Values() []interface{} {
	return []interface{}{r.Sheet, r.Row, r.Score, string(r.Verdict)}
}

// Table is the ordered concatenation of all rows, sheet order then row order
type Table struct {
	Rows []Row
}

// Append adds one sheet's rows to the end of the table
func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// Len returns the number of result rows
func (t *Table) Len() int {
	return len(t.Rows)
}

// Scores returns every row's score in table order
func (t *Table) Scores() []float64 {
	scores := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		scores[i] = r.Score
	}
	return scores
}
