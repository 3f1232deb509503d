// Package writer emits per-student workbooks.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile creates.
const defaultSheet = "Sheet1"

// identityRows is the number of rows taken by the ID / first / last name block,
// plus the blank separator row.
const identityRows = 4

// Writer builds an output workbook one student sheet at a time.
type Writer struct {
	f      *excelize.File
	styles styles
	taken  map[string]bool
	sheets []string
}

// New creates an empty workbook with the layout styles registered.
func New() (*Writer, error) {
	f := excelize.NewFile()
	s, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to register styles: %w", err)
	}
	return &Writer{f: f, styles: s, taken: make(map[string]bool)}, nil
}

// Sheets returns the sheet names added so far, in order.
func (w *Writer) Sheets() []string {
	return append([]string(nil), w.sheets...)
}

// WriteTo saves the workbook to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	return w.f.WriteTo(out)
}

// Close releases the workbook.
func (w *Writer) Close() error {
	return w.f.Close()
}

// newSheet adds a sheet named after s. The first sheet reuses the default sheet.
func (w *Writer) newSheet(s models.Student) (string, error) {
	name := SheetName(s, w.taken)
	if len(w.sheets) == 0 {
		if err := w.f.SetSheetName(defaultSheet, name); err != nil {
			return "", err
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return "", err
	}
	w.taken[strings.ToLower(name)] = true
	w.sheets = append(w.sheets, name)
	return name, nil
}

// sheetWriter writes cells on one sheet and remembers the first error.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (sw *sheetWriter) set(col, row int, v interface{}) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetCellValue(sw.sheet, cellName(col, row), v)
}

func (sw *sheetWriter) style(col1, col2, row, styleID int) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetCellStyle(sw.sheet, cellName(col1, row), cellName(col2, row), styleID)
}

func (sw *sheetWriter) merge(col1, col2, row int) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.MergeCell(sw.sheet, cellName(col1, row), cellName(col2, row))
}

func (sw *sheetWriter) width(col string, width float64) {
	if sw.err != nil {
		return
	}
	sw.err = sw.f.SetColWidth(sw.sheet, col, col, width)
}

// printArea sets the sheet's print area to A1 through (col, row).
func (sw *sheetWriter) printArea(col, row int) {
	if sw.err != nil {
		return
	}
	area := models.PrintArea{R1: 1, C1: 1, R2: row, C2: col}
	sw.err = sw.f.SetDefinedName(&excelize.DefinedName{
		Name:     parser.PrintAreaName,
		RefersTo: parser.PrintAreaReference(sw.sheet, area),
		Scope:    sw.sheet,
	})
}

// identity writes the ID / first / last name block in A1:B3.
func (sw *sheetWriter) identity(s models.Student, st styles) {
	labels := []struct {
		label string
		value string
	}{
		{"ID:", s.ID},
		{"First Name:", s.FirstName},
		{"Last Name:", s.LastName},
	}
	for i, l := range labels {
		sw.set(1, i+1, l.label)
		sw.set(2, i+1, l.value)
		sw.style(1, 2, i+1, st.label)
	}
}

// number converts a rounded decimal for cell storage.
func number(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
