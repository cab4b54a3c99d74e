package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ericlevine/quickcodes"
)

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported symbologies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SYMBOLOGY\tKIND\tREGISTERED")
			for _, s := range quickcodes.Symbologies() {
				kind := "1D"
				if s.IsMatrix() {
					kind = "2D"
				}
				fmt.Fprintf(tw, "%s\t%s\t%t\n", s, kind, quickcodes.Registered(s))
			}
			return tw.Flush()
		},
	}
}
