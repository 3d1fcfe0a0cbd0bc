package cli

import (
	"github.com/spf13/cobra"

	"go.llib.dev/featurebook/pkg/printkit"
	"go.llib.dev/featurebook/pkg/viewkit"
)

func viewsCmd() *cobra.Command {
	var from, to, take int

	c := &cobra.Command{
		Use:   "views",
		Short: "Print the even squares of a number range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			squares := viewkit.Transform(viewkit.Iota(from, to), func(x int) int { return x * x })
			evens := viewkit.Filter(squares, func(x int) bool { return x%2 == 0 })
			return printkit.Fprint(cmd.OutOrStdout(), viewkit.Take(evens, take), "squares")
		},
	}

	c.Flags().IntVar(&from, "from", 1, "first number of the range")
	c.Flags().IntVar(&to, "to", 20, "end of the range, exclusive")
	c.Flags().IntVar(&take, "take", 5, "maximum number of printed values")
	return c
}
