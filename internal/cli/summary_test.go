package cli

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

func TestWeightStatus(t *testing.T) {
	assert.Contains(t, WeightStatus(decimal.NewFromInt(100)), "Total weight: 100%")
	assert.NotContains(t, WeightStatus(decimal.NewFromInt(100)), "should be")
	assert.Contains(t, WeightStatus(decimal.RequireFromString("99.9")), "Total weight: 99.9% (should be 100%)")
	assert.Contains(t, WeightStatus(decimal.NewFromInt(110)), "(exceeds 100%)")
}

func TestRenderResult(t *testing.T) {
	res := &gradebook.Result{
		Mode:    gradebook.ModeGrades,
		Sheets:  []string{"Lopez, Ana"},
		Skipped: []int{3, 7},
		Grades: []models.GradeReport{{
			FinalGrade: decimal.RequireFromString("83"),
			WeightUsed: decimal.RequireFromString("100"),
		}},
	}

	var buf bytes.Buffer
	RenderResult(&buf, res, "out.xlsx")

	out := buf.String()
	assert.Contains(t, out, "Created 1 student sheets in out.xlsx")
	assert.Contains(t, out, "rows 3, 7")
	assert.Contains(t, out, "Lopez, Ana")
	assert.Contains(t, out, "83.00%")
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	progress := Progress(&buf, "Writing sheets")
	progress("Lopez, Ana", 1, 2)
	progress("Kim, Ben", 2, 2)

	assert.Contains(t, buf.String(), "Writing sheets")
}
