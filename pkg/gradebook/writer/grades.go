package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// AddGradeSheet lays out one student's grade report and returns the sheet name.
//
// Layout: identity rows, the Assignment / Score / Max Points table grouped by
// category, an optional category averages block, the weighted grades block and the
// final weighted grade row.
func (w *Writer) AddGradeSheet(r models.GradeReport, showAverages bool) (string, error) {
	name, err := w.newSheet(r.Student)
	if err != nil {
		return "", err
	}
	st := w.styles
	sw := &sheetWriter{f: w.f, sheet: name}

	sw.identity(r.Student, st)

	row := identityRows + 1
	for i, h := range []string{"Assignment", "Score", "Max Points"} {
		sw.set(i+1, row, h)
	}
	sw.style(1, 3, row, st.header)
	row++

	for _, c := range r.Categories {
		sw.set(1, row, strings.ToUpper(c.Category.Name))
		sw.style(1, 3, row, st.category)
		sw.merge(1, 3, row)
		row++

		for _, item := range c.Items {
			sw.set(1, row, item.Label)
			if item.Score != nil {
				sw.set(2, row, *item.Score)
			}
			sw.set(3, row, item.MaxPoints)
			sw.style(1, 1, row, st.body)
			sw.style(2, 3, row, st.bodyCenter)
			row++
		}
	}
	row++

	scored := r.Scored()
	if showAverages && len(scored) > 0 {
		sw.set(1, row, "CATEGORY AVERAGES (%)")
		sw.style(1, 3, row, st.header)
		sw.merge(1, 3, row)
		row++

		for _, c := range scored {
			sw.set(1, row, c.Category.Name)
			sw.set(2, row, number(c.Percent))
			sw.style(1, 3, row, st.body)
			sw.style(2, 2, row, st.percent)
			row++
		}
		row++
	}

	sw.set(1, row, "WEIGHTED GRADES")
	sw.style(1, 4, row, st.header)
	sw.merge(1, 4, row)
	row++

	for i, h := range []string{"Category", "Score (%)", "Weight (%)", "Weighted Score"} {
		sw.set(i+1, row, h)
	}
	sw.style(1, 4, row, st.weightHeader)
	row++

	for _, c := range scored {
		sw.set(1, row, c.Category.Name)
		sw.set(2, row, number(c.Percent))
		sw.set(3, row, c.Category.Weight)
		sw.set(4, row, number(c.Weighted))
		sw.style(1, 1, row, st.body)
		sw.style(2, 2, row, st.percent)
		sw.style(3, 3, row, st.weight)
		sw.style(4, 4, row, st.weighted)
		row++
	}
	row++

	sw.set(1, row, "FINAL WEIGHTED GRADE")
	sw.set(2, row, number(r.FinalGrade))
	sw.set(3, row, fmt.Sprintf("(of %s%%)", r.WeightUsed.String()))
	sw.style(1, 4, row, st.final)
	sw.style(2, 2, row, st.finalPercent)
	sw.style(3, 3, row, st.finalCenter)

	sw.width("A", 35)
	for _, col := range []string{"B", "C", "D"} {
		sw.width(col, 15)
	}
	sw.printArea(4, row)

	if sw.err != nil {
		return "", fmt.Errorf("failed to write sheet %q: %w", name, sw.err)
	}
	return name, nil
}
