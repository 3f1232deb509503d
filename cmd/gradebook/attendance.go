package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gradebook-go/internal/cli"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
)

func attendanceCmd() *cobra.Command {
	var (
		flags identityFlags
		dates []string
	)

	cmd := &cobra.Command{
		Use:   "attendance [input]",
		Short: "Write one attendance sheet per student",
		Long: `Write each student's attendance by date (1 present, 0 absent) with
color-coded cells and a summary of days present, total days and attendance rate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gradebook.AttendanceOptions{
				Options: flags.options(),
				Dates:   dates,
			}
			opts.Progress = cli.Progress(cmd.ErrOrStderr(), "Writing attendance sheets")

			var buf bytes.Buffer
			res, err := gradebook.ConvertAttendance(args[0], &buf, opts)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			if err := os.WriteFile(flags.outputPath, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}

			cli.RenderResult(cmd.OutOrStdout(), res, flags.outputPath)
			return nil
		},
	}

	flags.registerOutput(cmd, "attendance_report.xlsx")
	cmd.Flags().StringSliceVar(&dates, "dates", nil, "Attendance date columns (default: every non-identity column)")

	return cmd
}
