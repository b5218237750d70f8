package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSchemaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "List the model columns and the answer columns they do not cover",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.load()
			if err != nil {
				return err
			}
			defer rt.logger.Sync()

			report := rt.svc.Schema()
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%d columns (source: %s)\n", len(report.Columns), rt.artifact.FeatureSource)
			for i, c := range report.Columns {
				fmt.Fprintf(w, "%4d  %s\n", i, c)
			}
			if len(report.Unresolved) == 0 {
				fmt.Fprintln(w, "\nall answer columns resolve")
				return nil
			}
			fmt.Fprintf(w, "\n%d answer columns not in the model:\n", len(report.Unresolved))
			for _, u := range report.Unresolved {
				if s := report.Suggestions[u]; len(s) > 0 {
					fmt.Fprintf(w, "  %s -> %s\n", u, strings.Join(s, ", "))
					continue
				}
				fmt.Fprintf(w, "  %s\n", u)
			}
			return nil
		},
	}
}
