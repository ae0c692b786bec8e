package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <value> <value> [value...]",
		Short: "Add values left to right",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rootOpts.Logger()
			sum, err := parseValue(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				v, err := parseValue(arg)
				if err != nil {
					return err
				}
				next := sum.Add(v)
				logger.Debug("add", zap.Stringer("a", sum), zap.Stringer("b", v), zap.Stringer("result", next))
				sum = next
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
}

// NewSubCommand creates the sub command.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sub <minuend> <subtrahend>",
		Short: "Subtract the second value from the first one",
		Long: `Subtract the second value from the first one.

The subtraction is refused with exit code 1 if the result would be negative.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := rootOpts.Logger()
			a, err := parseValue(args[0])
			if err != nil {
				return err
			}
			b, err := parseValue(args[1])
			if err != nil {
				return err
			}
			diff, ok := a.Sub(b)
			if !ok {
				logger.Info("subtraction refused", zap.Stringer("a", a), zap.Stringer("b", b))
				return NewExitError(ExitFailure, fmt.Sprintf("cannot subtract %s from %s", b, a))
			}
			logger.Debug("sub", zap.Stringer("a", a), zap.Stringer("b", b), zap.Stringer("result", diff))
			fmt.Fprintln(cmd.OutOrStdout(), diff)
			return nil
		},
	}
}
