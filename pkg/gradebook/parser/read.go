// Package parser reads tabular gradebook input from spreadsheet files.
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

var (
	// ErrUnsupportedFormat indicates the input extension has no reader.
	ErrUnsupportedFormat = errors.New("unsupported input format")
	// ErrSheetNotFound indicates the requested sheet does not exist.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrEmptyTable indicates the input has no header row.
	ErrEmptyTable = errors.New("no header row found")
)

// ReadOptions configures table reading.
type ReadOptions struct {
	// Sheet selects a sheet by name. Empty selects the first sheet.
	Sheet string
}

// Format identifies an input reader.
type Format string

const (
	// FormatXLSX is an Office Open XML workbook (.xlsx, .xlsm, .xltx, .xltm).
	FormatXLSX Format = "xlsx"
	// FormatXLS is a legacy BIFF8 workbook (.xls).
	FormatXLS Format = "xls"
	// FormatCSV is a comma-separated export (.csv).
	FormatCSV Format = "csv"
)

// DetectFormat maps a file name to its reader by extension.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return FormatXLSX, nil
	case ".xls":
		return FormatXLS, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}

// ReadTable reads the input file at path into a Table.
func ReadTable(path string, opts ReadOptions) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTableFrom(f, filepath.Base(path), opts)
}

// ReadTableFrom reads a Table from r. name is used for format detection and as the
// table's Source.
func ReadTableFrom(r io.Reader, name string, opts ReadOptions) (*models.Table, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var table *models.Table
	switch format {
	case FormatXLS:
		table, err = readXLS(bytes.NewReader(data), name, opts)
	case FormatCSV:
		table, err = readCSV(bytes.NewReader(data), name)
	default:
		table, err = readXLSX(bytes.NewReader(data), name, opts)
	}
	if err != nil {
		return nil, err
	}
	return table, nil
}
