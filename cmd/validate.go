package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Mjoel54/klein-portfolio/internal/projects"
	"github.com/Mjoel54/klein-portfolio/internal/render"
)

func newValidateCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the project list and render every card",
		Long: `Checks the compiled-in project list, or the file given with --file,
and renders every card. Fails on duplicate ids, empty names or
descriptions, malformed links and logos.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := projects.Default()
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("reading %s: %w", file, err)
				}
				if reg, err = projects.Parse(data); err != nil {
					return fmt.Errorf("invalid project list %s:\n%w", file, err)
				}
			}

			r, err := render.New()
			if err != nil {
				return err
			}
			for _, p := range reg.All() {
				if _, err := r.Card(p); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d projects OK\n", reg.Len())
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "",
		"project list to check instead of the compiled-in one")
	return cmd
}
