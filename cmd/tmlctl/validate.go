package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/schema"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <schema> <in>",
		Short: "Validate a TML or BTML document against a JSON Schema file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			schemaPath, docPath := args[0], args[1]

			schemaData, err := os.ReadFile(schemaPath)
			if err != nil {
				return fmt.Errorf("reading schema: %w", err)
			}

			var s jsonschema.Schema
			if err := json.Unmarshal(schemaData, &s); err != nil {
				return fmt.Errorf("parsing schema: %w", err)
			}

			data, err := readInput(docPath)
			if err != nil {
				return err
			}

			doc, err := parseAuto(data)
			if err != nil {
				return err
			}

			if err := schema.Validate(doc, &s); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")

			return nil
		},
	}
}
