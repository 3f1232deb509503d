package gradebook

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var twoCategories = []models.Category{
	{Name: "Exams", Keywords: []string{"exam"}, MaxPoints: 100, Weight: 60},
	{Name: "Quizzes", Keywords: []string{"quiz"}, MaxPoints: 10, Weight: 40},
}

// writeInput saves rows to an .xlsx file in a temp dir and returns its path.
func writeInput(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func gradeInput(t *testing.T) string {
	return writeInput(t, [][]interface{}{
		{"Student ID", "First Name", "Last Name", "Exam 1", "Exam 2", "Quiz 1", "Quiz 2"},
		{"1001", "Ana", "Lopez", 80, 90, 9, 7},
		{"", "Ghost", "Row", 100, 100, 10, 10},
		{"1002", "Ben", "Kim", 70, nil, 10, "excused"},
	})
}

func openOutput(t *testing.T, buf *bytes.Buffer) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func rawCell(t *testing.T, f *excelize.File, sheet, axis string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, axis, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	return v
}

func TestConvertGrades(t *testing.T) {
	opts := GradeOptions{Categories: twoCategories}

	var buf bytes.Buffer
	res, err := ConvertGrades(gradeInput(t), &buf, opts)
	require.NoError(t, err)

	assert.Equal(t, ModeGrades, res.Mode)
	assert.Equal(t, "input.xlsx", res.Source)
	assert.Equal(t, models.Roles{ID: "Student ID", FirstName: "First Name", LastName: "Last Name"}, res.Roles)
	assert.Equal(t, []string{"Lopez, Ana", "Kim, Ben"}, res.Sheets)
	assert.Equal(t, []int{3}, res.Skipped)

	require.Len(t, res.Grades, 2)
	assert.Equal(t, "83.00", res.Grades[0].FinalGrade.StringFixed(2))
	assert.Equal(t, "82.00", res.Grades[1].FinalGrade.StringFixed(2))
	assert.Equal(t, "70.00", res.Grades[1].Categories[0].Percent.StringFixed(2))
	assert.Equal(t, "100.00", res.Grades[1].Categories[1].Percent.StringFixed(2))

	f := openOutput(t, &buf)
	assert.Equal(t, []string{"Lopez, Ana", "Kim, Ben"}, f.GetSheetList())
	assert.Equal(t, "1001", rawCell(t, f, "Lopez, Ana", "B1"))
	assert.Equal(t, "83", rawCell(t, f, "Lopez, Ana", "B18"))
	assert.Equal(t, "1002", rawCell(t, f, "Kim, Ben", "B1"))
	assert.Equal(t, "", rawCell(t, f, "Kim, Ben", "B8"), "blank exam stays blank")
	assert.Equal(t, "82", rawCell(t, f, "Kim, Ben", "B18"))
}

func TestConvertGradesProgress(t *testing.T) {
	var calls []int
	opts := GradeOptions{Categories: twoCategories}
	opts.Progress = func(sheet string, done, total int) {
		assert.Equal(t, 2, total)
		calls = append(calls, done)
	}

	var buf bytes.Buffer
	_, err := ConvertGrades(gradeInput(t), &buf, opts)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, calls)
}

func TestConvertGradesExplicitRoles(t *testing.T) {
	path := writeInput(t, [][]interface{}{
		{"Exam 1", "Last", "First", "Email", "ID"},
		{95, "Lopez", "Ana", "ana@example.com", "A1"},
	})

	opts := GradeOptions{Categories: twoCategories}
	opts.Roles = models.Roles{ID: "ID", FirstName: "First", LastName: "Last"}

	var buf bytes.Buffer
	res, err := ConvertGrades(path, &buf, opts)
	require.NoError(t, err)

	require.Len(t, res.Grades, 1)
	r := res.Grades[0]
	assert.Equal(t, "A1", r.Student.ID)
	require.Len(t, r.Categories, 2, "Email lands in Other")
	assert.Equal(t, models.OtherCategory, r.Categories[1].Category.Name)
	assert.Equal(t, "57.00", r.FinalGrade.StringFixed(2))
	assert.Equal(t, "60", r.WeightUsed.String())
}

func TestConvertAttendance(t *testing.T) {
	path := writeInput(t, [][]interface{}{
		{"ID", "First", "Last", "9/1", "9/2", "9/3"},
		{"1", "Ana", "Lopez", 1, 0, 1},
		{"2", "Ben", "Kim", 1, nil, "late"},
		{nil, "No", "Id", 1, 1, 1},
	})

	var buf bytes.Buffer
	res, err := ConvertAttendance(path, &buf, AttendanceOptions{})
	require.NoError(t, err)

	assert.Equal(t, ModeAttendance, res.Mode)
	assert.Equal(t, []string{"Lopez, Ana", "Kim, Ben"}, res.Sheets)
	assert.Equal(t, []int{4}, res.Skipped)

	require.Len(t, res.Attendance, 2)
	assert.Equal(t, "66.67", res.Attendance[0].Rate.StringFixed(2))
	assert.Equal(t, 2, res.Attendance[1].Days)
	assert.Equal(t, "50.00", res.Attendance[1].Rate.StringFixed(2))

	f := openOutput(t, &buf)
	assert.Equal(t, "9/1", rawCell(t, f, "Lopez, Ana", "A6"))
	assert.Equal(t, "66.67", rawCell(t, f, "Lopez, Ana", "B13"))
}

func TestConvertAttendanceSelectedDates(t *testing.T) {
	path := writeInput(t, [][]interface{}{
		{"ID", "First", "Last", "9/1", "9/2", "Notes"},
		{"1", "Ana", "Lopez", 1, 0, "moved"},
	})

	opts := AttendanceOptions{Dates: []string{"9/1", "9/2"}}
	var buf bytes.Buffer
	res, err := ConvertAttendance(path, &buf, opts)
	require.NoError(t, err)
	assert.Len(t, res.Attendance[0].Records, 2)

	opts.Dates = []string{"9/9"}
	_, err = ConvertAttendance(path, &bytes.Buffer{}, opts)
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestConvertErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := ConvertGrades(filepath.Join(dir, "nope.xlsx"), &bytes.Buffer{}, DefaultGradeOptions())
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "grades.txt")
		require.NoError(t, os.WriteFile(path, []byte("ID,First,Last\n"), 0o644))
		_, err := ConvertGrades(path, &bytes.Buffer{}, DefaultGradeOptions())
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		path := filepath.Join(dir, "broken.xlsx")
		require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0o644))
		_, err := ConvertGrades(path, &bytes.Buffer{}, DefaultGradeOptions())
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})

	t.Run("missing sheet", func(t *testing.T) {
		opts := DefaultGradeOptions()
		opts.Sheet = "Term 2"
		_, err := ConvertGrades(gradeInput(t), &bytes.Buffer{}, opts)
		assert.ErrorIs(t, err, ErrSheetNotFound)
	})

	t.Run("no students", func(t *testing.T) {
		path := writeInput(t, [][]interface{}{
			{"ID", "First", "Last", "Exam 1"},
			{nil, "Ana", "Lopez", 90},
		})
		_, err := ConvertGrades(path, &bytes.Buffer{}, DefaultGradeOptions())
		assert.ErrorIs(t, err, ErrNoStudents)

		var ce *ConversionError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "classify", ce.Stage)
	})

	t.Run("no attendance columns", func(t *testing.T) {
		path := writeInput(t, [][]interface{}{
			{"ID", "First", "Last"},
			{"1", "Ana", "Lopez"},
		})
		_, err := ConvertAttendance(path, &bytes.Buffer{}, AttendanceOptions{})
		assert.ErrorIs(t, err, ErrNoAttendanceColumns)
	})
}

func TestGradeOptionsValidate(t *testing.T) {
	tests := []struct {
		name       string
		categories []models.Category
		wantErr    error
	}{
		{name: "defaults", categories: models.DefaultCategories()},
		{
			name:       "zero max points",
			categories: []models.Category{{Name: "Exams", MaxPoints: 0, Weight: 50}},
			wantErr:    ErrInvalidOptions,
		},
		{
			name:       "weight above 100",
			categories: []models.Category{{Name: "Exams", MaxPoints: 100, Weight: 120}},
			wantErr:    ErrInvalidOptions,
		},
		{
			name:       "blank name",
			categories: []models.Category{{Name: "", MaxPoints: 100, Weight: 10}},
			wantErr:    ErrInvalidOptions,
		},
		{
			name: "duplicate names",
			categories: []models.Category{
				{Name: "Exams", MaxPoints: 100, Weight: 50},
				{Name: "exams ", MaxPoints: 100, Weight: 50},
			},
			wantErr: ErrDuplicateCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := GradeOptions{Categories: tt.categories}.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidOptions)
		})
	}
}

func TestPreview(t *testing.T) {
	p, err := Preview(gradeInput(t), GradeOptions{Categories: twoCategories})
	require.NoError(t, err)

	assert.Equal(t, 3, p.Rows)
	assert.Equal(t, 7, p.Columns)
	assert.Equal(t, 2, p.Students)
	assert.Equal(t, []int{3}, p.Skipped)
	require.Len(t, p.Groups, 2)
	assert.Equal(t, []string{"Exam 1", "Exam 2"}, p.Groups[0].Columns)
	assert.Equal(t, []string{"Quiz 1", "Quiz 2"}, p.Groups[1].Columns)
	assert.Equal(t, "100", p.TotalWeight.String())
}

func TestWeightWarningMatchesPreview(t *testing.T) {
	fractional := []models.Category{
		{Name: "Exams", Keywords: []string{"exam"}, MaxPoints: 100, Weight: 10.1},
		{Name: "Quizzes", Keywords: []string{"quiz"}, MaxPoints: 10, Weight: 20.2},
		{Name: "Labs", Keywords: []string{"lab"}, MaxPoints: 10, Weight: 69.7},
	}
	short := []models.Category{
		{Name: "Exams", Keywords: []string{"exam"}, MaxPoints: 100, Weight: 60},
		{Name: "Quizzes", Keywords: []string{"quiz"}, MaxPoints: 10, Weight: 30},
	}

	tests := []struct {
		name       string
		categories []models.Category
		total      string
		warned     bool
	}{
		{name: "fractional weights total 100", categories: fractional, total: "100"},
		{name: "weights short of 100", categories: short, total: "90", warned: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.WarnLevel)
			opts := GradeOptions{Categories: tt.categories}
			opts.Logger = zap.New(core)

			input := gradeInput(t)
			_, err := ConvertGrades(input, &bytes.Buffer{}, opts)
			require.NoError(t, err)

			p, err := Preview(input, opts)
			require.NoError(t, err)

			assert.Equal(t, tt.total, p.TotalWeight.String())
			warnings := logs.FilterMessage("Category weights do not sum to 100").All()
			if !tt.warned {
				assert.Empty(t, warnings)
				return
			}
			require.Len(t, warnings, 1)
			assert.Equal(t, tt.total, warnings[0].ContextMap()["total"])
		})
	}
}
