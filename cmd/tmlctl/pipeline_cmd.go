package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/include"
	"go.tmlkit.dev/tml/interp"
	"go.tmlkit.dev/tml/transform"
)

func newInterpretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interpret <file>",
		Short: "Evaluate embedded expressions in a file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, err := parseAuto(data)
			if err != nil {
				return err
			}

			root, err = interp.Expand(root)
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(root))
		},
	}
}

// newAllFeaturesCmd registers its own copy of the pipeline stages' flags
// rather than the root command's persistent flags, so running this
// subcommand alongside others never fights over flag names.
func newAllFeaturesCmd() *cobra.Command {
	cfg := transform.NewCLIConfig()

	cmd := &cobra.Command{
		Use:   "all-features <in> [<out>]",
		Short: "Run the full transform pipeline over a file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			in, out := args[0], "-"
			if len(args) == 2 {
				out = args[1]
			}

			data, err := readInput(in)
			if err != nil {
				return err
			}

			root, err := parseAuto(data)
			if err != nil {
				return err
			}

			loader := include.NewOSLoader(filepath.Dir(in))

			pipeline, err := cfg.Pipeline(loader)
			if err != nil {
				return err
			}

			root, err = pipeline.Run(root)
			if err != nil {
				return err
			}

			return writeOutput(out, serializeOutput(root))
		},
	}

	cfg.RegisterFlags(cmd.Flags())

	if err := cfg.RegisterCompletions(cmd); err != nil {
		cmd.PrintErrf("register completions: %v\n", err)
	}

	return cmd
}
