package workbook

// Cell is one raw cell value. Nil means the cell is missing.
type Cell = interface{}

// Row maps a header name to the row's cell under that header
type Row map[string]Cell

// Sheet is one worksheet read as a header plus data rows.
// A sheet with no header row at all has a nil Header and no Rows.
type Sheet struct {
	Name   string
	Header []string
	Rows   []Row
}

// HasColumn reports whether the header contains name
func (s Sheet) HasColumn(name string) bool {
	for _, h := range s.Header {
		if h == name {
			return true
		}
	}
	return false
}

// Workbook is an ordered list of sheets as they appear in the file
type Workbook struct {
	Path   string
	Sheets []Sheet
}
