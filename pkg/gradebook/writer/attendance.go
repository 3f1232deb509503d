package writer

import (
	"fmt"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// AddAttendanceSheet lays out one student's attendance report and returns the
// sheet name. Present cells are filled green, absent cells red, others unstyled.
func (w *Writer) AddAttendanceSheet(r models.AttendanceReport) (string, error) {
	name, err := w.newSheet(r.Student)
	if err != nil {
		return "", err
	}
	st := w.styles
	sw := &sheetWriter{f: w.f, sheet: name}

	sw.identity(r.Student, st)

	row := identityRows + 1
	sw.set(1, row, "Date")
	sw.set(2, row, "Attendance")
	sw.style(1, 2, row, st.header)
	row++

	for _, rec := range r.Records {
		sw.set(1, row, rec.Date)
		if rec.Value != nil {
			sw.set(2, row, rec.Value)
		}
		sw.style(1, 1, row, st.body)
		sw.style(2, 2, row, statusStyle(st, rec.Status))
		row++
	}
	row++

	sw.set(1, row, "ATTENDANCE SUMMARY")
	sw.style(1, 2, row, st.header)
	sw.merge(1, 2, row)
	row++

	sw.set(1, row, "Days Present:")
	sw.set(2, row, r.Present)
	sw.style(1, 1, row, st.body)
	sw.style(2, 2, row, st.bodyCenter)
	row++

	sw.set(1, row, "Total Days:")
	sw.set(2, row, r.Days)
	sw.style(1, 1, row, st.body)
	sw.style(2, 2, row, st.bodyCenter)
	row++

	sw.set(1, row, "Attendance Rate:")
	sw.set(2, row, number(r.Rate))
	sw.style(1, 1, row, st.final)
	sw.style(2, 2, row, st.finalPercent)

	sw.width("A", 25)
	sw.width("B", 15)
	sw.printArea(2, row)

	if sw.err != nil {
		return "", fmt.Errorf("failed to write sheet %q: %w", name, sw.err)
	}
	return name, nil
}

// statusStyle picks the cell style for an attendance status.
func statusStyle(st styles, status models.AttendanceStatus) int {
	switch status {
	case models.StatusPresent:
		return st.present
	case models.StatusAbsent:
		return st.absent
	default:
		return st.bodyCenter
	}
}
