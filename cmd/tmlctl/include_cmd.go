package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/include"
)

func newIncludeCmd(once, buf bool) *cobra.Command {
	use := "include"

	switch {
	case once && buf:
		use = "include-once-buf"
	case once:
		use = "include-once"
	case buf:
		use = "include-buf"
	}

	return &cobra.Command{
		Use:   use + " <file>",
		Short: "Resolve includes in a file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := args[0]

			data, err := readInput(path)
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			loader := include.NewOSLoader(filepath.Dir(path))

			resolved, err := include.Resolve(root, loader, include.Config{Once: once, Buffer: buf})
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(resolved))
		},
	}
}
