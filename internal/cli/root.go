// Package cli is the command tree of the featurebook binary.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/logging"

	"go.llib.dev/featurebook/internal/logger"
)

// Execute runs the root command with the process arguments and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	var (
		debug    bool
		logLevel string
		restore  = func() {}
	)

	cmd := &cobra.Command{
		Use:          "featurebook",
		Short:        "Capability constrained printing, dispatch and views",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			r, err := logger.Setup(logger.Config{
				Out:   cmd.ErrOrStderr(),
				Level: logLevel,
				Debug: debug,
			})
			if err != nil {
				return err
			}
			restore = r
			logger.L().Debug(cmd.Context(), "command.start",
				logging.Field("command", cmd.Name()),
				logging.Field("args", args))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error, fatal (env "+logger.EnvLevel+")")

	cmd.AddCommand(
		printCmd(),
		maxCmd(),
		viewsCmd(),
		bitsCmd(),
		splitCmd(),
	)

	// cobra skips the post-run hooks when RunE fails, so the logger is restored around RunE instead.
	for _, sub := range cmd.Commands() {
		runE := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			defer func() { restore() }()
			err := runE(cmd, args)
			if err != nil {
				logger.L().Debug(cmd.Context(), "command.failed",
					logging.Field("command", cmd.Name()),
					logging.ErrField(err))
				return err
			}
			logger.L().Debug(cmd.Context(), "command.done", logging.Field("command", cmd.Name()))
			return nil
		}
	}
	return cmd
}
