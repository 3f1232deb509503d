package aggregate

import (
	"github.com/shopspring/decimal"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// Classify maps a cell value to its attendance status: 1 is present, 0 is absent,
// blank is blank and anything else is other.
func Classify(v interface{}) models.AttendanceStatus {
	if v == nil || models.FormatValue(v) == "" {
		return models.StatusBlank
	}
	n, ok := models.NumberValue(v)
	switch {
	case ok && n == 1:
		return models.StatusPresent
	case ok && n == 0:
		return models.StatusAbsent
	default:
		return models.StatusOther
	}
}

// Attendance computes one student's per-date records and attendance rate.
// The rate is present days over non-blank days, in percent, rounded to two places.
func Attendance(student models.Student, row models.Row, dates []string) models.AttendanceReport {
	report := models.AttendanceReport{
		Student: student,
		Rate:    decimal.Zero,
	}

	for _, date := range dates {
		v := row.C[date]
		status := Classify(v)
		rec := models.AttendanceRecord{Date: date, Status: status}
		if status != models.StatusBlank {
			rec.Value = v
			report.Days++
		}
		if status == models.StatusPresent {
			report.Present++
		}
		report.Records = append(report.Records, rec)
	}

	report.Rate = Rate(report.Present, report.Days)
	return report
}

// Rate returns present / days * 100 rounded to two places, or zero when days is zero.
func Rate(present, days int) decimal.Decimal {
	if days == 0 {
		return decimal.Zero
	}
	return Round2(decimal.NewFromInt(int64(present)).Mul(hundred).Div(decimal.NewFromInt(int64(days))))
}
