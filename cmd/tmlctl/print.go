package main

import (
	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/btml"
	"go.tmlkit.dev/tml/value"
)

func newLoadTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-tml <file>",
		Short: "Parse a file as TML and print it back",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(root))
		},
	}
}

func newLoadBTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load-btml <file>",
		Short: "Parse a file as BTML and print it as TML",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, _, err := btml.Decode(data)
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(root))
		},
	}
}

func newPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <file>",
		Short: "Print a TML or BTML file as TML, detecting format from the header",
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

			return writeOutput("-", serializeOutput(root))
		},
	}
}

func newPrintTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print-tml <file>",
		Short: "Print a TML file, preserving comments and empty lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(root))
		},
	}
}

func newPrintTMLValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print-tml-values <file>",
		Short: "Print a TML file with comments and empty lines stripped",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			return writeOutput("-", serializeOutput(stripCommentsAndEmpty(root)))
		},
	}
}

// stripCommentsAndEmpty removes ShapeComment and ShapeEmpty pairs from
// root, recursively.
func stripCommentsAndEmpty(root value.Value) value.Value {
	out := make([]value.Pair, 0, len(root.Object))

	for _, p := range root.Object {
		switch p.Shape() {
		case value.ShapeComment, value.ShapeEmpty:
			continue
		case value.ShapeObjectParent:
			p.Val = stripCommentsAndEmpty(p.Val)
		}

		out = append(out, p)
	}

	return value.NewObject(out, root.Pos)
}
