package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/wltime/internal/app"
)

func (c *CLI) newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort <wishlist>",
		Short: "Resolve item runtimes and show the wishlist sorted by them",
		Long: "Loads a wishlist page from a URL or a saved HTML file, looks up the runtime of\n" +
			"every item (cached locally) and prints the table sorted by runtime. In a\n" +
			"terminal the table is interactive: press s to flip the order, q to quit.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reverse, _ := cmd.Flags().GetBool("reverse")
			outputMode, _ := cmd.Flags().GetString("output")
			ci, _ := cmd.Flags().GetBool("ci")

			if ci {
				outputMode = "linear"
			}

			return c.app.Sort(cmd.Context(), args[0], app.SortOptions{
				Options:    options(cmd),
				Reverse:    reverse,
				OutputMode: outputMode,
			})
		},
	}
	cmd.Flags().BoolP("reverse", "r", false, "Longest items first")
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
	return cmd
}
