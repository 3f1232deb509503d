package parser

import (
	"fmt"
	"io"

	"github.com/extrame/xls"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// readXLS reads a legacy BIFF workbook.
func readXLS(r io.ReadSeeker, name string, opts ReadOptions) (*models.Table, error) {
	wb, err := xls.OpenReader(r, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, fmt.Errorf("no workbook stream in %s", name)
	}

	names := make([]string, 0, wb.NumSheets())
	for i := 0; i < wb.NumSheets(); i++ {
		if sheet := wb.GetSheet(i); sheet != nil {
			names = append(names, sheet.Name)
		}
	}
	sheetName, err := pickSheet(names, opts.Sheet)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for i := 0; i < wb.NumSheets(); i++ {
		sheet := wb.GetSheet(i)
		if sheet == nil || sheet.Name != sheetName {
			continue
		}
		rows = xlsRows(sheet)
		break
	}

	header, data, headerRow, firstCol, ok := splitHeader(rows)
	if !ok {
		return nil, fmt.Errorf("%w in sheet %q", ErrEmptyTable, sheetName)
	}
	return buildTable(name, sheetName, header, data, headerRow+1, firstCol), nil
}

// maxXLSCols is the BIFF8 column limit.
const maxXLSCols = 256

// xlsRows copies a sheet's cell text into a grid indexed from A1.
func xlsRows(sheet *xls.WorkSheet) [][]string {
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for rowIdx := 0; rowIdx <= int(sheet.MaxRow); rowIdx++ {
		row := xlsRow(sheet, rowIdx)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		// Rows built from cell records alone carry no column bounds.
		last := row.LastCol()
		if last <= 0 || last > maxXLSCols {
			last = maxXLSCols
		}
		cells := make([]string, last)
		for colIdx := row.FirstCol(); colIdx < last; colIdx++ {
			cells[colIdx] = row.Col(colIdx)
		}
		rows = append(rows, trimTrailingBlanks(cells))
	}
	return rows
}

// xlsRow returns the row at rowIdx, or nil when the sheet has no record for it.
// WorkSheet.Row dereferences missing rows.
func xlsRow(sheet *xls.WorkSheet, rowIdx int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return sheet.Row(rowIdx)
}

func trimTrailingBlanks(cells []string) []string {
	end := len(cells)
	for end > 0 && isBlank(cells[end-1]) {
		end--
	}
	return cells[:end]
}
