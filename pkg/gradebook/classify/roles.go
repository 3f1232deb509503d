package classify

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

var (
	// ErrUnknownColumn indicates a selected column is not in the header row.
	ErrUnknownColumn = errors.New("unknown column")
	// ErrNoAttendanceColumns indicates no date columns remain to report on.
	ErrNoAttendanceColumns = errors.New("no attendance columns selected")
)

// ResolveRoles fills unset roles with the first, second and third header columns
// and checks that every role names an existing column.
func ResolveRoles(table *models.Table, roles models.Roles) (models.Roles, error) {
	if len(table.Columns) == 0 {
		return roles, fmt.Errorf("%w: table has no columns", ErrUnknownColumn)
	}
	pick := func(i int) string {
		if i < len(table.Columns) {
			return table.Columns[i]
		}
		return table.Columns[0]
	}
	if roles.ID == "" {
		roles.ID = pick(0)
	}
	if roles.FirstName == "" {
		roles.FirstName = pick(1)
	}
	if roles.LastName == "" {
		roles.LastName = pick(2)
	}

	for _, label := range roles.Labels() {
		if !table.HasColumn(label) {
			return roles, fmt.Errorf("%w: %q", ErrUnknownColumn, label)
		}
	}
	return roles, nil
}

// GradeColumns returns every non-identity column in sheet order.
func GradeColumns(table *models.Table, roles models.Roles) []string {
	var cols []string
	for _, c := range table.Columns {
		if !roles.IsIdentity(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// AttendanceColumns validates the selected date columns, or returns every
// non-identity column when none are selected.
func AttendanceColumns(table *models.Table, roles models.Roles, selected []string) ([]string, error) {
	if len(selected) == 0 {
		cols := GradeColumns(table, roles)
		if len(cols) == 0 {
			return nil, ErrNoAttendanceColumns
		}
		return cols, nil
	}

	cols := make([]string, 0, len(selected))
	for _, label := range selected {
		if !table.HasColumn(label) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, label)
		}
		if roles.IsIdentity(label) {
			continue
		}
		cols = append(cols, label)
	}
	if len(cols) == 0 {
		return nil, ErrNoAttendanceColumns
	}
	return cols, nil
}

// Students returns the rows with a non-blank identifier and the source row numbers
// of the rows that were dropped.
func Students(rows []models.Row, roles models.Roles) (kept []models.Row, skipped []int) {
	for _, row := range rows {
		if row.IsBlank(roles.ID) {
			skipped = append(skipped, row.R)
			continue
		}
		kept = append(kept, row)
	}
	return kept, skipped
}

// StudentOf derives the identity of a row.
func StudentOf(row models.Row, roles models.Roles) models.Student {
	return models.Student{
		ID:        row.Text(roles.ID),
		FirstName: row.Text(roles.FirstName),
		LastName:  row.Text(roles.LastName),
		Row:       row.R,
	}
}
