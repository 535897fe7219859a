// SPDX-License-Identifier: MIT

// Package cli implements the bauer command-line interface.
package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/bauer/internal/config"
	"github.com/katalvlaran/bauer/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Resolved in PersistentPreRunE.
	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the bauer CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Config: config.Default(), Logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "bauer",
		Short: "Toeplitz Cholesky rows and Bauer completions",
		Long: `bauer computes the last row of the Cholesky factor of a symmetric
positive-definite Toeplitz matrix with the O(n²) Schur algorithm, and uses it
to complete a causal Laurent polynomial p into a unimodular pair (p, x).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML configuration file")

	cmd.AddCommand(NewSchurCommand(opts))
	cmd.AddCommand(NewCompleteCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))

	return cmd
}

// resolve merges the config file with flags and builds the logger.
// Explicit flags win over the file.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	if o.ConfigPath != "" {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "config", err)
		}
		o.Config = cfg
	}
	if cmd.Flags().Changed("format") || o.ConfigPath == "" {
		o.Config.Format = o.Format
	}
	if !config.ValidFormat(o.Config.Format) {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid format %q: must be one of %v", o.Config.Format, config.Formats))
	}
	o.Format = o.Config.Format

	level := o.Config.Log.Level
	if o.Verbose {
		level = "debug"
	}
	logger, err := logging.NewTo(cmd.ErrOrStderr(), level, o.Config.Log.Development)
	if err != nil {
		return WrapExitError(ExitCommandError, "logging", err)
	}
	o.Logger = logger
	o.Logger.Debug("configuration resolved",
		zap.String("format", o.Format),
		zap.Int("window", o.Config.Window),
		zap.Int("workers", o.workers()),
		zap.Bool("validate", o.Config.Validate),
	)

	return nil
}

func (o *RootOptions) workers() int {
	if o.Config.Workers > 0 {
		return o.Config.Workers
	}
	return runtime.GOMAXPROCS(0)
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}

// minArgs is cobra.MinimumNArgs with a command-error exit code.
func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("%s requires at least %d argument(s), got %d", cmd.Name(), n, len(args)))
		}
		return nil
	}
}
