package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/bignum/internal/mathutil"
	"github.com/avdva/bignum/tier"
)

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	var normalize bool
	cmd := &cobra.Command{
		Use:   "fmt <value>",
		Short: "Print a value in its canonical text form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			if normalize {
				n := v.Normalized()
				rootOpts.Logger().Debug("normalized", zap.Stringer("from", v), zap.Stringer("to", n))
				v = n
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "bring the mantissa within [1, 1000)")
	return cmd
}

// NewExpandCommand creates the expand command.
func NewExpandCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expand <value>",
		Short: "Print the full decimal number a value stands for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseValue(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v.Decimal().String())
			return nil
		},
	}
}

// NewTiersCommand creates the tiers command.
func NewTiersCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "List all tiers with their labels and scales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, t := range tier.All() {
				label := t.Label()
				if label == "" {
					label = "-"
				}
				fmt.Fprintf(w, "%-3d%-9s1e%d\n", t.Index(), label, t.Index()*mathutil.DigitsPerStep)
			}
			return nil
		},
	}
}
