package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
	"gopkg.in/yaml.v3"

	"go.llib.dev/featurebook/internal/logger"
	"go.llib.dev/featurebook/pkg/printkit"
)

const EnvLabel = "FEATUREBOOK_LABEL"

const ErrDataset errorkit.Error = "invalid dataset file"

func printCmd() *cobra.Command {
	var (
		label string
		file  string
	)

	c := &cobra.Command{
		Use:   "print [values...]",
		Short: "Print values as a labelled, bracketed list",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if file != "" {
				fromFile, err := loadDataset(file)
				if err != nil {
					return err
				}
				values = append(fromFile, values...)
			}
			if !cmd.Flags().Changed("label") {
				fromEnv, ok, err := env.Lookup[string](EnvLabel)
				if err != nil {
					return err
				}
				if ok {
					label = fromEnv
				}
			}
			logger.L().Debug(cmd.Context(), "print",
				logging.Field("label", label),
				logging.Field("count", len(values)))
			return printValues(cmd, values, label)
		},
	}

	c.Flags().StringVarP(&label, "label", "l", printkit.DefaultLabel, "label of the printed line (env "+EnvLabel+")")
	c.Flags().StringVarP(&file, "file", "f", "", "YAML file with a sequence of values, printed before the arguments")
	return c
}

// printValues prints integers when every value is an integer, floats when every value is a number,
// otherwise the raw strings.
func printValues(cmd *cobra.Command, values []string, label string) error {
	out := cmd.OutOrStdout()
	if ints, ok := parseAll(values, strconv.Atoi); ok {
		return printkit.FprintSlice(out, ints, label)
	}
	if floats, ok := parseAll(values, func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }); ok {
		return printkit.FprintSlice(out, floats, label)
	}
	return printkit.FprintSlice(out, values, label)
}

func parseAll[T any](values []string, parse func(string) (T, error)) ([]T, bool) {
	out := make([]T, 0, len(values))
	for _, raw := range values {
		v, err := parse(raw)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func loadDataset(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var values []string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, ErrDataset.Wrap(fmt.Errorf("%s: %w", path, err))
	}
	return values, nil
}
