package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/xuri/excelize/v2"
)

// buildTable turns a header row and data rows into a Table.
// header and data share column indexes; headerRow is the header's 1-based row number.
// Data rows that hold no values are dropped.
func buildTable(source, sheet string, header []string, data [][]string, headerRow, firstCol int) *models.Table {
	labels := headerLabels(header, firstCol)

	table := &models.Table{
		Source:  source,
		Sheet:   sheet,
		Columns: labels,
	}

	for i, row := range data {
		cellMap := make(map[string]interface{})
		for colIdx := firstCol; colIdx < len(row) && colIdx-firstCol < len(labels); colIdx++ {
			v := parseValue(row[colIdx])
			if s, ok := v.(string); ok && s == "" {
				continue
			}
			cellMap[labels[colIdx-firstCol]] = v
		}
		if len(cellMap) == 0 {
			continue
		}
		table.Rows = append(table.Rows, models.Row{
			R: headerRow + i + 1,
			C: cellMap,
		})
	}

	return table
}

// headerLabels trims header cells, names blank ones after their column letter
// and suffixes repeated labels with " (n)". The result never repeats a label,
// even when a header cell already reads like a suffixed one.
func headerLabels(header []string, firstCol int) []string {
	last := len(header) - 1
	for last >= firstCol && strings.TrimSpace(header[last]) == "" {
		last--
	}

	used := make(map[string]bool)
	next := make(map[string]int)
	var labels []string
	for colIdx := firstCol; colIdx <= last; colIdx++ {
		base := strings.TrimSpace(header[colIdx])
		if base == "" {
			name, _ := excelize.ColumnNumberToName(colIdx + 1)
			base = "Column " + name
		}
		label := base
		if used[label] {
			n := next[base]
			if n < 2 {
				n = 2
			}
			for used[fmt.Sprintf("%s (%d)", base, n)] {
				n++
			}
			label = fmt.Sprintf("%s (%d)", base, n)
			next[base] = n + 1
		}
		used[label] = true
		labels = append(labels, label)
	}
	return labels
}

// parseValue converts trimmed cell text to int64 or float64 when it is numeric.
// Anything else, including "", stays a string.
func parseValue(s string) interface{} {
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
