package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"go.llib.dev/featurebook/pkg/bitkit"
)

func bitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bits float",
		Short: "Print the bytes of a float32, then again with its sign bit set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := strconv.ParseFloat(args[0], 32)
			if err != nil {
				return err
			}
			if err := bitkit.FprintFloat32(cmd.OutOrStdout(), float32(f)); err != nil {
				return err
			}
			return bitkit.FprintFloat32(cmd.OutOrStdout(), bitkit.WithSignBit(float32(f)))
		},
	}
}
