package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/bignum/keypad"
)

// NewKeysCommand creates the keys command.
func NewKeysCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <key> [key...]",
		Short: "Print the calculator token of every key",
		Long: `Print the calculator token of every key, one per line.

Keys are named D0-D9, NumPad0-NumPad9, Decimal, Add, Subtract, Multiply, Divide, Enter, C and S.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, key := range args {
				token, found := keypad.Lookup(key)
				if !found {
					return NewExitError(ExitCommandError, fmt.Sprintf("unknown key %q", key))
				}
				rootOpts.Logger().Debug("key", zap.String("key", key), zap.String("token", string(token)))
				fmt.Fprintln(w, token)
			}
			return nil
		},
	}
}
