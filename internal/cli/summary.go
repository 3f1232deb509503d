package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
)

// RenderResult prints the sheets written by a conversion.
func RenderResult(w io.Writer, res *gradebook.Result, outputPath string) {
	fmt.Fprintln(w, SuccessStyle.Render(fmt.Sprintf("Created %d student sheets in %s", len(res.Sheets), outputPath)))
	if len(res.Skipped) > 0 {
		fmt.Fprintln(w, SubtleStyle.Render(fmt.Sprintf("Skipped %d rows without an ID (rows %s)", len(res.Skipped), joinInts(res.Skipped))))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	switch res.Mode {
	case gradebook.ModeGrades:
		fmt.Fprintf(tw, "%s\t%s\t%s\n", HeaderStyle.Render("Sheet"), HeaderStyle.Render("Final"), HeaderStyle.Render("Of"))
		for i, g := range res.Grades {
			fmt.Fprintf(tw, "%s\t%s%%\t%s%%\n", res.Sheets[i], g.FinalGrade.StringFixed(2), g.WeightUsed.String())
		}
	case gradebook.ModeAttendance:
		fmt.Fprintf(tw, "%s\t%s\t%s\n", HeaderStyle.Render("Sheet"), HeaderStyle.Render("Present"), HeaderStyle.Render("Rate"))
		for i, a := range res.Attendance {
			fmt.Fprintf(tw, "%s\t%d/%d\t%s%%\n", res.Sheets[i], a.Present, a.Days, a.Rate.StringFixed(2))
		}
	}
}

// RenderPreview prints the category assignment for an input.
func RenderPreview(w io.Writer, p *gradebook.PreviewResult) {
	fmt.Fprintln(w, TitleStyle.Render(p.Source))
	fmt.Fprintf(w, "%d rows, %d columns, %d students\n", p.Rows, p.Columns, p.Students)
	fmt.Fprintf(w, "ID: %s  First: %s  Last: %s\n\n", p.Roles.ID, p.Roles.FirstName, p.Roles.LastName)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Category"),
		HeaderStyle.Render("Weight"),
		HeaderStyle.Render("Max"),
		HeaderStyle.Render("Columns"))
	for _, g := range p.Groups {
		fmt.Fprintf(tw, "%s\t%g%%\t%g\t%s\n", g.Category.Name, g.Category.Weight, g.Category.MaxPoints, strings.Join(g.Columns, ", "))
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, WeightStatus(p.TotalWeight))
}

// WeightStatus describes the configured weight total. 100 is recommended but not enforced.
func WeightStatus(total decimal.Decimal) string {
	switch total.Cmp(decimal.NewFromInt(100)) {
	case 0:
		return SuccessStyle.Render(fmt.Sprintf("Total weight: %s%%", total))
	case -1:
		return WarningStyle.Render(fmt.Sprintf("Total weight: %s%% (should be 100%%)", total))
	default:
		return ErrorStyle.Render(fmt.Sprintf("Total weight: %s%% (exceeds 100%%)", total))
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
