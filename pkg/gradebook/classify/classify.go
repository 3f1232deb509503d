// Package classify assigns input columns to identity roles and grading categories.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// ErrDuplicateCategory indicates two categories share a name (case-insensitive).
var ErrDuplicateCategory = errors.New("duplicate category")

// Group is a category together with the columns assigned to it, in sheet order.
type Group struct {
	Category models.Category `json:"category"`
	Columns  []string        `json:"columns"`
}

// Assignment is the result of categorizing columns.
type Assignment struct {
	// Groups lists non-empty groups in configured order with Other last.
	Groups   []Group           `json:"groups"`
	byColumn map[string]string
}

// CategoryOf returns the category name a column was assigned to.
func (a Assignment) CategoryOf(column string) (string, bool) {
	name, ok := a.byColumn[column]
	return name, ok
}

// Uncategorized returns the columns that fell through to the catch-all.
func (a Assignment) Uncategorized() []string {
	for _, g := range a.Groups {
		if isOther(g.Category.Name) {
			return g.Columns
		}
	}
	return nil
}

// Categorize assigns every column to exactly one category: the first category, in
// configured order, with a keyword contained in the column label (case-insensitive),
// or Other when nothing matches.
func Categorize(columns []string, categories []models.Category) Assignment {
	other := models.DefaultOther()
	var named []models.Category
	for _, c := range categories {
		if isOther(c.Name) {
			other = c
			other.Name = models.OtherCategory
			continue
		}
		named = append(named, c)
	}

	buckets := make([][]string, len(named))
	var unmatched []string
	byColumn := make(map[string]string, len(columns))

	for _, col := range columns {
		idx := match(col, named)
		if idx < 0 {
			unmatched = append(unmatched, col)
			byColumn[col] = other.Name
			continue
		}
		buckets[idx] = append(buckets[idx], col)
		byColumn[col] = named[idx].Name
	}

	var groups []Group
	for i, c := range named {
		if len(buckets[i]) > 0 {
			groups = append(groups, Group{Category: c, Columns: buckets[i]})
		}
	}
	if len(unmatched) > 0 {
		groups = append(groups, Group{Category: other, Columns: unmatched})
	}

	return Assignment{Groups: groups, byColumn: byColumn}
}

// match returns the index of the first category with a keyword in label, or -1.
func match(label string, categories []models.Category) int {
	lower := strings.ToLower(label)
	for i, c := range categories {
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(lower, kw) {
				return i
			}
		}
	}
	return -1
}

// CheckUnique reports an error when two categories share a name.
func CheckUnique(categories []models.Category) error {
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if seen[key] {
			return fmt.Errorf("%w: %q", ErrDuplicateCategory, c.Name)
		}
		seen[key] = true
	}
	return nil
}

func isOther(name string) bool {
	return strings.EqualFold(strings.TrimSpace(name), models.OtherCategory)
}
