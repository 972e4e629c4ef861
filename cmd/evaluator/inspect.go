package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/evaluator/pkg/evaluator/source"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fs is the filesystem source paths refer to.
var fs = afero.NewOsFs()

type sourceInfo struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

func newInspectCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "inspect [path...]",
		Short: "Show the name and path of sources",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			infos := make([]sourceInfo, 0, len(args))
			for _, arg := range args {
				src := source.FromPath(fs, arg)
				logger.Debug().Str("arg", arg).Str("path", src.Path()).Msg("inspecting source")
				infos = append(infos, sourceInfo{Name: src.Name(), Path: src.Path()})
			}
			return writeInfos(cmd.OutOrStdout(), output, infos)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json or yaml")

	return cmd
}

func writeInfos(w io.Writer, format string, infos []sourceInfo) error {
	switch format {
	case "text":
		for _, info := range infos {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", info.Name, info.Path); err != nil {
				return err
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(infos); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
