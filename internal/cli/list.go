package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/planelp/programfile"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE",
		Short: "List the programs of a definition file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := programfile.Load(args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tOBJECTIVE\tCONSTRAINTS")
			for _, d := range defs {
				fmt.Fprintf(tw, "%d\t%s\t%gx + %gy\t%d\n", d.ID, d.Name, d.Objective[0], d.Objective[1], len(d.Constraints))
			}
			return tw.Flush()
		},
	}
}
