package models

import "github.com/shopspring/decimal"

// GradeItem is one graded column for one student.
type GradeItem struct {
	// Label is the column label.
	Label string `json:"label"`
	// Score is the parsed score, nil when the cell is blank or non-numeric.
	Score *float64 `json:"score,omitempty"`
	// MaxPoints is the category's max points per item.
	MaxPoints float64 `json:"max_points"`
}

// CategoryResult holds one category's line items and derived scores.
type CategoryResult struct {
	Category Category    `json:"category"`
	Items    []GradeItem `json:"items"`
	// Scored is the number of items with a score.
	Scored int `json:"scored"`
	// Earned is the sum of present scores.
	Earned decimal.Decimal `json:"earned"`
	// Possible is MaxPoints times Scored.
	Possible decimal.Decimal `json:"possible"`
	// Percent is Earned / Possible * 100, zero when nothing was scored.
	Percent decimal.Decimal `json:"percent"`
	// Weighted is Percent * Weight / 100, zero when nothing was scored.
	Weighted decimal.Decimal `json:"weighted"`
}

// HasScores reports whether at least one item in the category was scored.
func (c CategoryResult) HasScores() bool {
	return c.Scored > 0
}

// GradeReport is the per-student grade computation.
type GradeReport struct {
	Student    Student          `json:"student"`
	Categories []CategoryResult `json:"categories"`
	// FinalGrade sums Weighted over scored categories.
	FinalGrade decimal.Decimal `json:"final_grade"`
	// WeightUsed sums the weights of scored categories.
	WeightUsed decimal.Decimal `json:"weight_used"`
}

// Scored returns the categories that have at least one scored item.
func (g GradeReport) Scored() []CategoryResult {
	var out []CategoryResult
	for _, c := range g.Categories {
		if c.HasScores() {
			out = append(out, c)
		}
	}
	return out
}
