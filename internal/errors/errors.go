package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError represents a structured application error tagged with a taxonomy code
type AppError struct {
	Code    string
	Message string
	Sheet   string // sheet being processed when the error occurred, if any
	Cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if e.Sheet != "" {
		msg = fmt.Sprintf("sheet %q: %s", e.Sheet, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// WithCode tags an error with a taxonomy code
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Sheet:   appErr.Sheet,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// InSheet attaches the sheet name to an error. Errors already carrying a sheet are returned as is.
func InSheet(sheet string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if appErr.Sheet != "" {
			return err
		}
		return &AppError{
			Code:    appErr.Code,
			Message: appErr.Message,
			Sheet:   sheet,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    CodeComputation,
		Message: "processing failed",
		Sheet:   sheet,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// GetSheet returns the sheet recorded on the error chain, if any
func GetSheet(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Sheet
	}
	return ""
}

// Predefined error codes
const (
	CodePathNotFound     = "PATH_NOT_FOUND"
	CodeNotAFile         = "NOT_A_FILE"
	CodeInvalidExtension = "INVALID_EXTENSION"
	CodeSchema           = "SCHEMA_ERROR"
	CodeComputation      = "COMPUTATION_ERROR"
	CodeIO               = "IO_ERROR"
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeInvalidInput     = "INVALID_INPUT"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Path validation errors

func PathNotFound(path string) *AppError {
	return New(CodePathNotFound, fmt.Sprintf("file not found: %s", path))
}

func NotAFile(path string) *AppError {
	return New(CodeNotAFile, fmt.Sprintf("not a file: %s", path))
}

func InvalidExtension(path string) *AppError {
	return New(CodeInvalidExtension, fmt.Sprintf("not a valid Excel file: %s", path))
}

// MissingColumn reports a designated column absent from a sheet header
func MissingColumn(sheet, column string) *AppError {
	return &AppError{
		Code:    CodeSchema,
		Message: fmt.Sprintf("column %q not found", column),
		Sheet:   sheet,
	}
}

// Computation wraps a scoring or vectorization fault
func Computation(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeComputation,
		Message: message,
		Cause:   cause,
	}
}

// IO wraps a workbook read or report write fault
func IO(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeIO,
		Message: message,
		Cause:   cause,
	}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

// IsPathError reports whether err failed path validation
func IsPathError(err error) bool {
	switch GetCode(err) {
	case CodePathNotFound, CodeNotAFile, CodeInvalidExtension:
		return true
	}
	return false
}

func IsSchemaError(err error) bool {
	return GetCode(err) == CodeSchema
}

func IsComputationError(err error) bool {
	return GetCode(err) == CodeComputation
}

func IsIOError(err error) bool {
	return GetCode(err) == CodeIO
}
