package writer

import "github.com/xuri/excelize/v2"

// Fill colors.
const (
	ColorHeader   = "4472C4"
	ColorCategory = "B4C6E7"
	ColorWeight   = "FCE4D6"
	ColorFinal    = "70AD47"
	ColorPresent  = "C6EFCE"
	ColorAbsent   = "FFC7CE"
)

// Number formats for percentage-valued cells. Values are stored as plain numbers
// (85.5 for 85.5%) so they stay sortable.
var (
	percentFormat = `0.00"%"`
	weightFormat  = `General"%"`
	scoreFormat   = `0.00`
)

// styles holds the style IDs registered on a workbook.
type styles struct {
	label        int
	header       int
	category     int
	body         int
	bodyCenter   int
	percent      int
	weightHeader int
	weight       int
	weighted     int
	final        int
	finalCenter  int
	finalPercent int
	present      int
	absent       int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func solid(color string) excelize.Fill {
	return excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}
}

var center = &excelize.Alignment{Horizontal: "center", Vertical: "center"}

// newStyles registers every style used by the layouts.
func newStyles(f *excelize.File) (styles, error) {
	var s styles
	bold12 := &excelize.Font{Bold: true, Size: 12}
	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&s.label, &excelize.Style{Font: bold12}},
		{&s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
			Fill:      solid(ColorHeader),
			Border:    thinBorder(),
			Alignment: center,
		}},
		{&s.category, &excelize.Style{
			Font:   &excelize.Font{Bold: true, Size: 11},
			Fill:   solid(ColorCategory),
			Border: thinBorder(),
		}},
		{&s.body, &excelize.Style{Border: thinBorder()}},
		{&s.bodyCenter, &excelize.Style{Border: thinBorder(), Alignment: center}},
		{&s.percent, &excelize.Style{Border: thinBorder(), Alignment: center, CustomNumFmt: &percentFormat}},
		{&s.weightHeader, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Fill:      solid(ColorWeight),
			Border:    thinBorder(),
			Alignment: center,
		}},
		{&s.weight, &excelize.Style{Border: thinBorder(), Alignment: center, CustomNumFmt: &weightFormat}},
		{&s.weighted, &excelize.Style{Border: thinBorder(), Alignment: center, CustomNumFmt: &scoreFormat}},
		{&s.final, &excelize.Style{Font: bold12, Fill: solid(ColorFinal), Border: thinBorder()}},
		{&s.finalCenter, &excelize.Style{Font: bold12, Fill: solid(ColorFinal), Border: thinBorder(), Alignment: center}},
		{&s.finalPercent, &excelize.Style{
			Font:         bold12,
			Fill:         solid(ColorFinal),
			Border:       thinBorder(),
			Alignment:    center,
			CustomNumFmt: &percentFormat,
		}},
		{&s.present, &excelize.Style{Fill: solid(ColorPresent), Border: thinBorder(), Alignment: center}},
		{&s.absent, &excelize.Style{Fill: solid(ColorAbsent), Border: thinBorder(), Alignment: center}},
	}

	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, err
		}
		*d.dst = id
	}
	return s, nil
}
