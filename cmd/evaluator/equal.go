package main

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/evaluator/pkg/evaluator/source"
	"github.com/spf13/cobra"
)

var errNotEqual = errors.New("sources differ")

func newEqualCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equal [path] [path]",
		Short: "Compare two sources by path",
		Long:  "Print whether two sources refer to the same path. Exits non-zero when they differ.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := source.FromPath(fs, args[0])
			b := source.FromPath(fs, args[1])
			equal := a.Equals(b)
			logger.Debug().
				Str("left", a.Path()).
				Str("right", b.Path()).
				Bool("equal", equal).
				Msg("compared sources")

			fmt.Fprintln(cmd.OutOrStdout(), equal)
			if !equal {
				return errNotEqual
			}
			return nil
		},
	}
}
