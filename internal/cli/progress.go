package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
)

// Progress returns a callback that advances a progress bar on w, one step per
// student sheet. The bar is created on the first call, once the total is known.
func Progress(w io.Writer, description string) gradebook.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(sheet string, done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(30),
				progressbar.OptionSetDescription(description),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(w)
				}),
			)
		}
		_ = bar.Set(done)
	}
}
