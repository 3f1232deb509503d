package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gradebook-go/internal/cli"
	"github.com/ukaji3/gradebook-go/pkg/gradebook"
)

func categoriesCmd() *cobra.Command {
	var flags identityFlags

	cmd := &cobra.Command{
		Use:   "categories [input]",
		Short: "Preview how grade columns are categorized",
		Long: `Read the input and show which category each grade column falls into,
the number of students found and whether the category weights total 100%.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gradebook.GradeOptions{
				Options:    flags.options(),
				Categories: cfg.Categories,
			}

			preview, err := gradebook.Preview(args[0], opts)
			if err != nil {
				return fmt.Errorf("preview failed: %w", err)
			}

			cli.RenderPreview(cmd.OutOrStdout(), preview)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
