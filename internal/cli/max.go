package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go.llib.dev/featurebook/pkg/maxkit"
)

func maxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "max a b",
		Short: "Print the greater of two values, numerically when both are integers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result any
			a, errA := strconv.Atoi(args[0])
			b, errB := strconv.Atoi(args[1])
			if errA == nil && errB == nil {
				result = maxkit.Pointee(&a, &b)
			} else {
				result = maxkit.Of(args[0], args[1])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}
