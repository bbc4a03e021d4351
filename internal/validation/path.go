package validation

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"accuracycheck/internal/errors"
)

// WorkbookExtensions lists the accepted spreadsheet extensions, lowercase
var WorkbookExtensions = []string{".xlsx", ".xls"}

// ValidateWorkbookPath checks that path names an existing regular file with a
// spreadsheet extension and returns its absolute form.
func ValidateWorkbookPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.InvalidInput("no workbook path provided")
	}

	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return "", errors.PathNotFound(path)
		}
		return "", errors.IO("stat workbook", err)
	}
	if !info.Mode().IsRegular() {
		return "", errors.NotAFile(path)
	}
	if !HasWorkbookExtension(path) {
		return "", errors.InvalidExtension(path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.IO("resolve absolute path", err)
	}
	return abs, nil
}

// HasWorkbookExtension reports whether path ends in an accepted extension, ignoring case
func HasWorkbookExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range WorkbookExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ReportPath derives the output workbook path: the input extension is replaced by "-results.xlsx"
func ReportPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "-results.xlsx"
}
