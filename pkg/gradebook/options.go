// Package gradebook converts gradebook and attendance exports into per-student workbooks.
package gradebook

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/classify"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
	"go.uber.org/zap"
)

// Mode represents the conversion mode.
type Mode string

const (
	// ModeGrades emits category line items and weighted grades per student.
	ModeGrades Mode = "grades"
	// ModeAttendance emits per-date attendance and an attendance summary per student.
	ModeAttendance Mode = "attendance"
)

// ProgressFunc is called after each student sheet is written.
type ProgressFunc func(sheet string, done, total int)

// Options configures behavior shared by both modes.
type Options struct {
	// Sheet selects the input sheet by name. Empty selects the first sheet.
	Sheet string
	// Roles names the identity columns. Unset roles default to the first, second
	// and third header columns.
	Roles models.Roles
	// Logger receives debug and warning output. Nil disables logging.
	Logger *zap.Logger `validate:"-"`
	// Progress is called after each sheet. Optional.
	Progress ProgressFunc `validate:"-"`
}

// GradeOptions configures grade conversion.
type GradeOptions struct {
	Options
	// Categories are matched against column labels in order. A category named
	// Other configures the catch-all.
	Categories []models.Category `validate:"dive"`
	// ShowCategoryAverages adds the category averages block to each sheet.
	ShowCategoryAverages bool
}

// AttendanceOptions configures attendance conversion.
type AttendanceOptions struct {
	Options
	// Dates selects the attendance columns. Empty selects every non-identity column.
	Dates []string
}

// DefaultGradeOptions returns grade options with the built-in categories.
func DefaultGradeOptions() GradeOptions {
	return GradeOptions{Categories: models.DefaultCategories()}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks category fields and name uniqueness.
func (o GradeOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed %q (value %v)", ErrInvalidOptions, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if err := classify.CheckUnique(o.Categories); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o Options) progress(sheet string, done, total int) {
	if o.Progress != nil {
		o.Progress(sheet, done, total)
	}
}
