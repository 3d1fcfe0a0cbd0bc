package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.llib.dev/featurebook/pkg/stringkit"
)

func splitCmd() *cobra.Command {
	var sep string

	c := &cobra.Command{
		Use:   "split line",
		Short: "Cut a line around the first separator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			head, tail := stringkit.SplitBy(args[0], sep)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "head: %q\ntail: %q\n", head, tail)
			return err
		},
	}

	c.Flags().StringVarP(&sep, "sep", "s", stringkit.DefaultSeparator, "separator")
	return c
}
