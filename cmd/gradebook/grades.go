package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gradebook-go/internal/cli"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
	"github.com/ukaji3/gradebook-go/pkg/gradebook/models"
)

// identityFlags holds the role and sheet flags shared by the conversion commands.
type identityFlags struct {
	idColumn    string
	firstColumn string
	lastColumn  string
	sheet       string
	outputPath  string
}

// register adds the role and sheet flags to cmd.
func (f *identityFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.idColumn, "id", "", "ID column (default: first column)")
	cmd.Flags().StringVar(&f.firstColumn, "first", "", "First name column (default: second column)")
	cmd.Flags().StringVar(&f.lastColumn, "last", "", "Last name column (default: third column)")
	cmd.Flags().StringVar(&f.sheet, "sheet", "", "Input sheet name (default: first sheet)")
}

// registerOutput adds the role and sheet flags plus --output for commands that write a workbook.
func (f *identityFlags) registerOutput(cmd *cobra.Command, defaultOutput string) {
	f.register(cmd)
	cmd.Flags().StringVarP(&f.outputPath, "output", "o", defaultOutput, "Output workbook path")
}

func (f *identityFlags) options() gradebook.Options {
	return gradebook.Options{
		Sheet: f.sheet,
		Roles: models.Roles{
			ID:        f.idColumn,
			FirstName: f.firstColumn,
			LastName:  f.lastColumn,
		},
		Logger: logger,
	}
}

func gradesCmd() *cobra.Command {
	var flags identityFlags

	cmd := &cobra.Command{
		Use:   "grades [input]",
		Short: "Write one grade sheet per student",
		Long: `Categorize grade columns by keyword, compute category percentages and the
weighted final grade, and write one sheet per student.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gradebook.GradeOptions{
				Options:              flags.options(),
				Categories:           cfg.Categories,
				ShowCategoryAverages: v.GetBool("show_category_averages"),
			}
			opts.Progress = cli.Progress(cmd.ErrOrStderr(), "Writing grade sheets")
			if !models.WeightsComplete(cfg.Categories) {
				fmt.Fprintln(cmd.ErrOrStderr(), cli.WeightStatus(models.TotalWeight(cfg.Categories)))
			}

			var buf bytes.Buffer
			res, err := gradebook.ConvertGrades(args[0], &buf, opts)
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

	flags.registerOutput(cmd, "gradebook_transfer.xlsx")
	cmd.Flags().Bool("averages", false, "Add a category averages block to each sheet")
	_ = v.BindPFlag("show_category_averages", cmd.Flags().Lookup("averages"))

	return cmd
}
