package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// MaxSheetName is Excel's sheet name length limit.
const MaxSheetName = 31

const invalidSheetChars = `[]:*?/\`

// SheetName derives a sheet name "Last, First" for s that is valid in Excel and not
// already in taken (compared case-insensitively, keys lower-cased).
func SheetName(s models.Student, taken map[string]bool) string {
	name := truncate(s.LastName+", "+s.FirstName, MaxSheetName)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidSheetChars, r) {
			return -1
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	if strings.TrimSpace(name) == "" || name == ", " {
		name = fmt.Sprintf("Student_%d", s.Row)
	}

	base := name
	for n := 1; taken[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf("_%d", n)
		limit := MaxSheetName - 3
		if len(suffix) > 3 {
			limit = MaxSheetName - len(suffix)
		}
		name = strings.TrimRight(truncate(base, limit), "'") + suffix
	}
	return name
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
