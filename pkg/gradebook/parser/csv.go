package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

const utf8BOM = "\ufeff"

// readCSV reads a comma-separated export. Rows may have differing field counts.
func readCSV(r io.Reader, name string) (*models.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	header, data, headerRow, firstCol, ok := splitHeader(rows)
	if !ok {
		return nil, ErrEmptyTable
	}
	return buildTable(name, "", header, data, headerRow+1, firstCol), nil
}
