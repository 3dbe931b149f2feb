package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (c *CLI) newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>...",
		Short: "Print the runtime of individual items",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}

			results, err := c.app.Get(cmd.Context(), args, options(cmd))

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, r := range results {
				if r.Err != nil {
					continue
				}
				d := r.Duration
				if d == "" {
					d = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\n", d, r.URL)
			}
			_ = w.Flush()

			return err
		},
	}
}
