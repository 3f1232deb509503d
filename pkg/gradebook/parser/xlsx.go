package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/xuri/excelize/v2"
)

// readXLSX reads an Office Open XML workbook.
// Header labels use the displayed (formatted) text; data cells use raw values so
// percentages and dates keep their numeric form.
func readXLSX(r io.Reader, name string, opts ReadOptions) (*models.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName, err := pickSheet(f.GetSheetList(), opts.Sheet)
	if err != nil {
		return nil, err
	}

	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	header, _, headerRow, firstCol, ok := splitHeader(formatted)
	if !ok {
		return nil, fmt.Errorf("%w in sheet %q", ErrEmptyTable, sheetName)
	}
	_, maxRow, _, _ := findDataBounds(formatted)
	var data [][]string
	if headerRow+1 < len(raw) {
		end := maxRow + 1
		if end > len(raw) {
			end = len(raw)
		}
		data = raw[headerRow+1 : end]
	}

	return buildTable(name, sheetName, header, data, headerRow+1, firstCol), nil
}

// pickSheet returns want if it is present, or the first sheet when want is empty.
func pickSheet(sheets []string, want string) (string, error) {
	if len(sheets) == 0 {
		return "", fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	if want == "" {
		return sheets[0], nil
	}
	for _, s := range sheets {
		if s == want {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrSheetNotFound, want)
}
