package parser

import "testing"

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		name                           string
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{"empty", nil, -1, -1, -1, -1},
		{"whitespace only", [][]string{{" ", "\t"}}, -1, -1, -1, -1},
		{"offset", [][]string{{}, {"", "a", "b"}, {"", "", "", "c"}}, 1, 2, 1, 3},
	}

	for _, tt := range tests {
		minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
		if minRow != tt.minRow || maxRow != tt.maxRow || minCol != tt.minCol || maxCol != tt.maxCol {
			t.Errorf("%s: findDataBounds = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
				tt.name, minRow, maxRow, minCol, maxCol, tt.minRow, tt.maxRow, tt.minCol, tt.maxCol)
		}
	}
}
