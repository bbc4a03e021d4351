package excel

// fileType is the on-disk workbook format, chosen by extension
type fileType string

const (
	fileTypeXLSX fileType = "xlsx"
	fileTypeXLS  fileType = "xls"
)
