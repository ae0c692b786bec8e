// Package cli implements the bignum command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/avdva/bignum"
	"github.com/avdva/bignum/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Logging logging.Config

	logger *zap.Logger
}

// Logger returns the logger built for the running command, or a no-op logger.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// NewRootCommand creates the root command for the bignum CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logging: logging.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "bignum",
		Short: "Tiered magnitude calculator",
		Long: `bignum adds, subtracts and formats tiered magnitudes,
numbers written as a mantissa and a tier label, like "250.75 K" or "1.1 QdVg".

Examples:
  bignum add "600 K" "500 K"
  bignum sub "0.5 M" "0.2 M"
  bignum expand "1.1 B"
  bignum add -- -5 "1 K"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Verbose {
				opts.Logging.Level = "debug"
			}
			return opts.initLogger(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = opts.Logger().Sync()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Logging.Level, "log-level", opts.Logging.Level, "log level (debug|info|warn|error)")
	cmd.PersistentFlags().StringVar(&opts.Logging.Format, "log-format", opts.Logging.Format, "log format (console|json)")
	cmd.PersistentFlags().StringVar(&opts.Logging.Output, "log-output", opts.Logging.Output, "log output (stderr|stdout|file path)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewFmtCommand(opts))
	cmd.AddCommand(NewExpandCommand(opts))
	cmd.AddCommand(NewTiersCommand(opts))
	cmd.AddCommand(NewKeysCommand(opts))

	return cmd
}

// initLogger sends stderr logs to the command's error writer, so they can be captured.
func (o *RootOptions) initLogger(cmd *cobra.Command) error {
	if o.Logging.Output == "" || o.Logging.Output == "stderr" {
		o.logger = logging.NewWithSyncer(o.Logging, zapcore.AddSync(cmd.ErrOrStderr()))
		return nil
	}
	logger, err := logging.New(o.Logging)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid logging configuration", err)
	}
	o.logger = logger
	return nil
}

// parseValue parses a command argument, turning failures into command errors.
func parseValue(s string) (bignum.Value, error) {
	v, err := bignum.FromString(s)
	if err != nil {
		return bignum.Zero, WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %q", s), err)
	}
	return v, nil
}
