package models

import "github.com/shopspring/decimal"

// OtherCategory is the name of the catch-all category for unmatched columns.
const OtherCategory = "Other"

// Category is a weighted grading bucket matched against column labels by keyword.
type Category struct {
	// Name is the display name, unique (case-insensitive) within a configuration.
	Name string `json:"name" mapstructure:"name" yaml:"name" validate:"required"`
	// Keywords are matched case-insensitively as substrings of column labels.
	Keywords []string `json:"keywords" mapstructure:"keywords" yaml:"keywords"`
	// MaxPoints is the number of points each item in the category is out of.
	MaxPoints float64 `json:"max_points" mapstructure:"max_points" yaml:"max_points" validate:"gt=0"`
	// Weight is the category's share of the final grade, in percent.
	Weight float64 `json:"weight" mapstructure:"weight" yaml:"weight" validate:"gte=0,lte=100"`
}

// DefaultCategories returns the built-in category list.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Exams", Keywords: []string{"exam", "test", "midterm", "final"}, MaxPoints: 100, Weight: 25},
		{Name: "Assignments", Keywords: []string{"assignment", "homework", "hw"}, MaxPoints: 100, Weight: 25},
		{Name: "Participation", Keywords: []string{"participation", "attendance"}, MaxPoints: 1, Weight: 30},
		{Name: "El Civics", Keywords: []string{"el civics", "civics", "elcivics"}, MaxPoints: 100, Weight: 20},
		DefaultOther(),
	}
}

// DefaultOther returns the catch-all used when no Other category is configured.
func DefaultOther() Category {
	return Category{Name: OtherCategory, MaxPoints: 100, Weight: 0}
}

// TotalWeight sums the weights of the given categories exactly.
func TotalWeight(categories []Category) decimal.Decimal {
	total := decimal.Zero
	for _, c := range categories {
		total = total.Add(decimal.NewFromFloat(c.Weight))
	}
	return total
}

// WeightsComplete reports whether the weights sum to exactly 100.
func WeightsComplete(categories []Category) bool {
	return TotalWeight(categories).Equal(decimal.NewFromInt(100))
}
