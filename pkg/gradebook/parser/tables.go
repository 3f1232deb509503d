package parser

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when the rows hold no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if !isBlank(cell) {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// splitHeader locates the header row (the first row holding data) and returns it
// with the rows below it, clipped to the data bounds.
func splitHeader(rows [][]string) (header []string, data [][]string, headerRow, firstCol int, ok bool) {
	minRow, maxRow, minCol, _ := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil, -1, -1, false
	}
	return rows[minRow], rows[minRow+1 : maxRow+1], minRow, minCol, true
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
