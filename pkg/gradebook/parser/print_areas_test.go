package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

func TestPrintAreaReferenceRoundTrip(t *testing.T) {
	area := models.PrintArea{R1: 1, C1: 1, R2: 20, C2: 4}

	ref := PrintAreaReference("O'Neil, Pat", area)
	assert.Equal(t, "'O''Neil, Pat'!$A$1:$D$20", ref)

	sheet, areas := parsePrintAreaReference(ref)
	assert.Equal(t, "O'Neil, Pat", sheet)
	assert.Equal(t, []models.PrintArea{area}, areas)
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas int
	}{
		{"Sheet1!$A$1:$B$2", "Sheet1", 1},
		{"'Doe, Jane'!$A$1:$B$2,'Doe, Jane'!$D$1:$E$2", "Doe, Jane", 2},
		{"Sheet1!A1", "Sheet1", 0},
		{"garbage", "", 0},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		assert.Equal(t, tt.wantSheet, sheet, tt.ref)
		assert.Len(t, areas, tt.wantAreas, tt.ref)
	}
}
