package models

import (
	"strconv"
	"strings"
)

// Table represents the parsed input: a header row followed by data rows.
type Table struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Sheet is the sheet the table was read from, empty for CSV input.
	Sheet string `json:"sheet,omitempty"`
	// Columns holds the header labels in sheet order. Labels are unique.
	Columns []string `json:"columns"`
	// Rows holds the non-empty data rows below the header.
	Rows []Row `json:"rows"`
}

// HasColumn reports whether label is one of the table's header labels.
func (t *Table) HasColumn(label string) bool {
	for _, c := range t.Columns {
		if c == label {
			return true
		}
	}
	return false
}

// FormatValue renders a parsed cell value back to text.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case nil:
		return ""
	default:
		return ""
	}
}

// NumberValue returns the numeric form of a parsed cell value.
// Strings are not coerced; the parser already turned numeric text into numbers.
func NumberValue(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case int:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}
