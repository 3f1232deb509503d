// Package aggregate computes per-student grade and attendance summaries.
package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/classify"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

var hundred = decimal.NewFromInt(100)

// Grades computes one student's category scores and weighted final grade.
// Blank and non-numeric cells are left out of both earned and possible points.
func Grades(student models.Student, row models.Row, assignment classify.Assignment) models.GradeReport {
	report := models.GradeReport{
		Student:    student,
		FinalGrade: decimal.Zero,
		WeightUsed: decimal.Zero,
	}

	for _, group := range assignment.Groups {
		result := Category(group.Category, group.Columns, row)
		if result.HasScores() {
			report.FinalGrade = report.FinalGrade.Add(result.Weighted)
			report.WeightUsed = report.WeightUsed.Add(decimal.NewFromFloat(group.Category.Weight))
		}
		report.Categories = append(report.Categories, result)
	}

	return report
}

// Category computes a single category's line items and percentages for row.
func Category(category models.Category, columns []string, row models.Row) models.CategoryResult {
	result := models.CategoryResult{
		Category: category,
		Earned:   decimal.Zero,
		Possible: decimal.Zero,
		Percent:  decimal.Zero,
		Weighted: decimal.Zero,
	}

	maxPoints := decimal.NewFromFloat(category.MaxPoints)
	for _, col := range columns {
		item := models.GradeItem{Label: col, MaxPoints: category.MaxPoints}
		if n, ok := models.NumberValue(row.C[col]); ok {
			score := n
			item.Score = &score
			result.Scored++
			result.Earned = result.Earned.Add(decimal.NewFromFloat(n))
			result.Possible = result.Possible.Add(maxPoints)
		}
		result.Items = append(result.Items, item)
	}

	if result.Scored > 0 && result.Possible.IsPositive() {
		result.Percent = result.Earned.Div(result.Possible).Mul(hundred)
		result.Weighted = result.Percent.Mul(decimal.NewFromFloat(category.Weight)).Div(hundred)
	}

	return result
}

// Round2 rounds d to two decimal places, half away from zero.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
