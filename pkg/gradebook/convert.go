package gradebook

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/aggregate"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/classify"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/parser"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/writer"
	"go.uber.org/zap"
)

// Result describes a finished conversion.
type Result struct {
	Mode Mode `json:"mode"`
	// Source is the input file name.
	Source string `json:"source"`
	// Roles are the resolved identity columns.
	Roles models.Roles `json:"roles"`
	// Sheets lists the emitted sheet names in student order.
	Sheets []string `json:"sheets"`
	// Skipped lists source rows dropped for a blank identifier.
	Skipped []int `json:"skipped,omitempty"`
	// Grades holds per-student reports in grades mode.
	Grades []models.GradeReport `json:"grades,omitempty"`
	// Attendance holds per-student reports in attendance mode.
	Attendance []models.AttendanceReport `json:"attendance,omitempty"`
}

// ConvertGrades reads the input at path and writes a grades workbook to out.
func ConvertGrades(path string, out io.Writer, opts GradeOptions) (*Result, error) {
	table, err := load(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	return GradesFromTable(table, out, opts)
}

// ConvertAttendance reads the input at path and writes an attendance workbook to out.
func ConvertAttendance(path string, out io.Writer, opts AttendanceOptions) (*Result, error) {
	table, err := load(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	return AttendanceFromTable(table, out, opts)
}

// GradesFromTable converts an already parsed table into a grades workbook.
func GradesFromTable(table *models.Table, out io.Writer, opts GradeOptions) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	roles, rows, skipped, err := prepare(table, opts.Options)
	if err != nil {
		return nil, err
	}

	assignment := classify.Categorize(classify.GradeColumns(table, roles), opts.Categories)
	for _, g := range assignment.Groups {
		log.Debug("Category assigned",
			zap.String("category", g.Category.Name),
			zap.Strings("columns", g.Columns))
	}
	if !models.WeightsComplete(opts.Categories) {
		log.Warn("Category weights do not sum to 100",
			zap.String("total", models.TotalWeight(opts.Categories).String()))
	}

	w, err := writer.New()
	if err != nil {
		return nil, NewConversionError("write", "", err)
	}
	defer w.Close()

	result := &Result{Mode: ModeGrades, Source: table.Source, Roles: roles, Skipped: skipped}
	for i, row := range rows {
		student := classify.StudentOf(row, roles)
		report := aggregate.Grades(student, row, assignment)

		name, err := w.AddGradeSheet(report, opts.ShowCategoryAverages)
		if err != nil {
			return nil, NewConversionError("write", name, err)
		}
		log.Debug("Wrote grade sheet",
			zap.String("sheet", name),
			zap.String("final_grade", report.FinalGrade.StringFixed(2)))

		result.Grades = append(result.Grades, report)
		opts.progress(name, i+1, len(rows))
	}
	result.Sheets = w.Sheets()

	if _, err := w.WriteTo(out); err != nil {
		return nil, NewConversionError("write", "", err)
	}
	return result, nil
}

// AttendanceFromTable converts an already parsed table into an attendance workbook.
func AttendanceFromTable(table *models.Table, out io.Writer, opts AttendanceOptions) (*Result, error) {
	log := opts.logger()

	roles, rows, skipped, err := prepare(table, opts.Options)
	if err != nil {
		return nil, err
	}
	dates, err := classify.AttendanceColumns(table, roles, opts.Dates)
	if err != nil {
		return nil, NewConversionError("classify", table.Sheet, err)
	}

	w, err := writer.New()
	if err != nil {
		return nil, NewConversionError("write", "", err)
	}
	defer w.Close()

	result := &Result{Mode: ModeAttendance, Source: table.Source, Roles: roles, Skipped: skipped}
	for i, row := range rows {
		student := classify.StudentOf(row, roles)
		report := aggregate.Attendance(student, row, dates)

		name, err := w.AddAttendanceSheet(report)
		if err != nil {
			return nil, NewConversionError("write", name, err)
		}
		log.Debug("Wrote attendance sheet",
			zap.String("sheet", name),
			zap.Int("present", report.Present),
			zap.Int("days", report.Days))

		result.Attendance = append(result.Attendance, report)
		opts.progress(name, i+1, len(rows))
	}
	result.Sheets = w.Sheets()

	if _, err := w.WriteTo(out); err != nil {
		return nil, NewConversionError("write", "", err)
	}
	return result, nil
}

// PreviewResult summarizes how an input would be converted.
type PreviewResult struct {
	Source   string           `json:"source"`
	Rows     int              `json:"rows"`
	Columns  int              `json:"columns"`
	Students int              `json:"students"`
	Skipped  []int            `json:"skipped,omitempty"`
	Roles    models.Roles     `json:"roles"`
	Groups   []classify.Group `json:"groups"`

	// TotalWeight sums the configured weights; 100 is recommended.
	TotalWeight decimal.Decimal `json:"total_weight"`
}

// Preview reads the input and reports the row counts and category assignment
// without writing a workbook.
func Preview(path string, opts GradeOptions) (*PreviewResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	table, err := load(path, opts.Sheet)
	if err != nil {
		return nil, err
	}

	roles, rows, skipped, err := prepare(table, opts.Options)
	if err != nil && !errors.Is(err, ErrNoStudents) {
		return nil, err
	}
	assignment := classify.Categorize(classify.GradeColumns(table, roles), opts.Categories)

	return &PreviewResult{
		Source:      table.Source,
		Rows:        len(table.Rows),
		Columns:     len(table.Columns),
		Students:    len(rows),
		Skipped:     skipped,
		Roles:       roles,
		Groups:      assignment.Groups,
		TotalWeight: models.TotalWeight(opts.Categories),
	}, nil
}

// load reads the input table, mapping reader failures onto package errors.
func load(path, sheet string) (*models.Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	table, err := parser.ReadTable(path, parser.ReadOptions{Sheet: sheet})
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrSheetNotFound) || errors.Is(err, ErrEmptyTable) {
			return nil, NewConversionError("read", sheet, err)
		}
		return nil, NewConversionError("read", sheet, fmt.Errorf("%w: %v", ErrInvalidFormat, err))
	}
	return table, nil
}

// prepare resolves identity roles and drops rows without an identifier.
func prepare(table *models.Table, opts Options) (models.Roles, []models.Row, []int, error) {
	roles, err := classify.ResolveRoles(table, opts.Roles)
	if err != nil {
		return roles, nil, nil, NewConversionError("classify", table.Sheet, err)
	}

	rows, skipped := classify.Students(table.Rows, roles)
	for _, r := range skipped {
		opts.logger().Debug("Skipping row without identifier", zap.Int("row", r))
	}
	if len(rows) == 0 {
		return roles, nil, skipped, NewConversionError("classify", table.Sheet, ErrNoStudents)
	}
	return roles, rows, skipped, nil
}
