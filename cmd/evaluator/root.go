package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/evaluator/pkg/evaluator"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is set up by the root command before any subcommand runs.
var logger = evaluator.DefaultLogger()

// newRootCommand builds the base command and its subcommands.
func newRootCommand() *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "evaluator",
		Short: "Inspect and order evaluator source files",
		Long: `evaluator works with source file references: it reports their names and paths,
compares them by path and orders them by declared dependencies.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := evaluator.LogLevelFromString(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			logger = newCommandLogger(level)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newEqualCommand())
	cmd.AddCommand(newOrderCommand())

	return cmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommandLogger(level zerolog.Level) zerolog.Logger {
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return evaluator.NewColorLogger(os.Stderr, level)
	}
	return evaluator.NewLogger(os.Stderr, level)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of evaluator`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "evaluator version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}
