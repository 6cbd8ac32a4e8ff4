package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/btml"
	"go.tmlkit.dev/tml/include"
	"go.tmlkit.dev/tml/tmpl"
	"go.tmlkit.dev/tml/transform"
	"go.tmlkit.dev/tml/translate"
)

var errUnknownMode = errors.New("tmlctl: unknown tml2btml mode")

func newTML2BTMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tml2btml <mode> <in> <out>",
		Short: "Convert a TML file to BTML (mode: all, shrink, strip, strip-shrink, afss)",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, in, out := args[0], args[1], args[2]

			opts, strip, runPipeline, err := encodeOptionsForMode(mode)
			if err != nil {
				return err
			}

			data, err := readInput(in)
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			if runPipeline {
				root, err = fullPipeline(in).Run(root)
				if err != nil {
					return err
				}
			}

			if strip {
				root = stripCommentsAndEmpty(root)
			}

			encoded, warnings, err := btml.Encode(root, opts)
			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, w)
			}

			if err != nil {
				return err
			}

			return writeOutput(out, encoded)
		},
	}
}

// fullPipeline builds the default all-stages [transform.Pipeline], with
// includes resolved relative to the directory containing path.
func fullPipeline(path string) transform.Pipeline {
	return transform.Pipeline{
		Loader:          include.NewOSLoader(filepath.Dir(path)),
		IncludeConfig:   include.Config{},
		TemplateOptions: tmpl.CollectOptions{Remove: true, Recursive: true},
		Translations:    translate.DefaultTranslations(),
		Profiles:        translate.DefaultProfiles(),
		Variables:       translate.DefaultVariables(),
	}
}

// encodeOptionsForMode maps a tml2btml mode name to btml encode options,
// whether the source tree should be stripped of comments and empty lines
// before encoding, and whether the full transform pipeline should run
// first. "afss" (all features + strip + shrink) is the only mode that
// runs the pipeline.
func encodeOptionsForMode(mode string) (opts btml.EncodeOptions, strip, runPipeline bool, err error) {
	switch mode {
	case "all":
		return btml.EncodeOptions{Header: true}, false, false, nil
	case "shrink":
		return btml.EncodeOptions{Header: true, StringTable: true}, false, false, nil
	case "strip":
		return btml.EncodeOptions{Header: true}, true, false, nil
	case "strip-shrink":
		return btml.EncodeOptions{Header: true, StringTable: true}, true, false, nil
	case "afss":
		return btml.EncodeOptions{Header: true, StringTable: true}, true, true, nil
	default:
		return btml.EncodeOptions{}, false, false, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}
}

func newBTML2TMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "btml2tml <mode> <in> <out>",
		Short: "Convert a BTML file to TML (mode: all)",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			mode, in, out := args[0], args[1], args[2]
			if mode != "all" {
				return fmt.Errorf("%w: %q", errUnknownMode, mode)
			}

			data, err := readInput(in)
			if err != nil {
				return err
			}

			root, warnings, err := btml.Decode(data)
			for _, w := range warnings {
				fmt.Fprintln(os.Stderr, w)
			}

			if err != nil {
				return err
			}

			return writeOutput(out, serializeOutput(root))
		},
	}
}
