// Package models defines data structures for gradebook conversion.
package models

// Row represents a single input record keyed by column label.
type Row struct {
	// R is the source row index (1-based).
	R int `json:"r"`
	// C maps column label to cell value (int64, float64 or string).
	// Blank cells are absent from the map.
	C map[string]interface{} `json:"c"`
}

// Text returns the trimmed string form of the cell under label, or "" when blank.
func (r Row) Text(label string) string {
	v, ok := r.C[label]
	if !ok || v == nil {
		return ""
	}
	return FormatValue(v)
}

// IsBlank reports whether the cell under label is missing or empty.
func (r Row) IsBlank(label string) bool {
	return r.Text(label) == ""
}
