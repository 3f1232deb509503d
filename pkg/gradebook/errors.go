package gradebook

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/classify"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be parsed as a spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrInvalidOptions indicates the conversion options failed validation.
var ErrInvalidOptions = errors.New("invalid options")

// ErrNoStudents indicates every row was dropped for lacking an identifier.
var ErrNoStudents = errors.New("no students with an identifier")

// Errors raised by subpackages, re-exported for errors.Is checks.
var (
	ErrUnsupportedFormat   = parser.ErrUnsupportedFormat
	ErrSheetNotFound       = parser.ErrSheetNotFound
	ErrEmptyTable          = parser.ErrEmptyTable
	ErrUnknownColumn       = classify.ErrUnknownColumn
	ErrNoAttendanceColumns = classify.ErrNoAttendanceColumns
	ErrDuplicateCategory   = classify.ErrDuplicateCategory
)

// ConversionError represents an error during one conversion stage.
type ConversionError struct {
	Stage string // "read", "classify", "write"
	Sheet string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("%s error in sheet %q: %v", e.Stage, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(stage, sheet string, err error) *ConversionError {
	return &ConversionError{
		Stage: stage,
		Sheet: sheet,
		Err:   err,
	}
}
