package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"go.tmlkit.dev/tml/btml"
	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/value"
)

var btmlMagic = []byte{'b', 't', 'm', 'l'}

// readInput reads path, or standard input when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes data to path, or standard output when path is "" or
// "-".
func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// parseTML parses data as TML, preserving comments and empty lines so the
// tree round-trips faithfully.
func parseTML(data []byte) (value.Value, error) {
	return tml.ParseString(string(data), tml.Options{
		Filename: "<input>", KeepComments: true, KeepEmptyLines: true,
	})
}

// parseAuto parses data as BTML if it carries the BTML magic header,
// otherwise as TML.
func parseAuto(data []byte) (value.Value, error) {
	if bytes.HasPrefix(data, btmlMagic) {
		root, warnings, err := btml.Decode(data)
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, w)
		}

		return root, err
	}

	return parseTML(data)
}

func serializeOutput(root value.Value) []byte {
	return []byte(tml.Serialize(root, tml.DefaultSerializeOptions()))
}
