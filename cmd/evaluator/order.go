package main

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/evaluator/pkg/evaluator/source"
	"github.com/spf13/cobra"
)

func newOrderCommand() *cobra.Command {
	var depFlags []string

	cmd := &cobra.Command{
		Use:   "order [path...]",
		Short: "Print sources in dependency order",
		Long: `Print sources so that each one follows the sources it depends on.
Dependencies are given as --dep SOURCE=DEPENDENCY and may be repeated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := source.NewSet(logger)
			for _, arg := range args {
				set.Add(source.FromPath(fs, arg))
			}

			deps, err := parseDeps(depFlags)
			if err != nil {
				return err
			}

			ordered, err := source.Order(set, deps)
			if err != nil {
				return fmt.Errorf("failed to order sources: %w", err)
			}
			for _, src := range ordered {
				fmt.Fprintln(cmd.OutOrStdout(), src.Path())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&depFlags, "dep", nil, "Dependency as SOURCE=DEPENDENCY")

	return cmd
}

// parseDeps turns SOURCE=DEPENDENCY pairs into a dependency map keyed by the
// normalized source path.
func parseDeps(pairs []string) (map[string][]string, error) {
	deps := make(map[string][]string)
	for _, pair := range pairs {
		from, to, ok := strings.Cut(pair, "=")
		if !ok || from == "" || to == "" {
			return nil, fmt.Errorf("invalid dependency %q: expected SOURCE=DEPENDENCY", pair)
		}
		fromPath := source.FromPath(fs, from).Path()
		deps[fromPath] = append(deps[fromPath], source.FromPath(fs, to).Path())
	}
	return deps, nil
}
