package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matheus-soulza/simulador-enem/internal/names"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "normalize <name>...",
		Short:   "Print the normalized token of each column name",
		Example: `  simulador normalize "Acesso à internet_A" "Qtd Residentes"`,
		Args:    cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, a := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a, names.Normalize(a))
			}
		},
	}
}
