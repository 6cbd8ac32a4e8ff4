package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"go.tmlkit.dev/tml/tml"
	"go.tmlkit.dev/tml/tmpl"
	"go.tmlkit.dev/tml/translate"
	"go.tmlkit.dev/tml/value"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates <file>",
		Short: "List the template definitions collected from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return err
			}

			root, err := parseTML(data)
			if err != nil {
				return err
			}

			templates, _, err := tmpl.Collect(root, tmpl.CollectOptions{Remove: true, Recursive: true})
			if err != nil {
				return err
			}

			names := make([]string, 0, len(templates))
			for name := range templates {
				names = append(names, name)
			}

			sort.Strings(names)

			out := cmd.OutOrStdout()

			for _, name := range names {
				t := templates[name]
				fmt.Fprintf(out, "%s(%s)\n", t.Name, joinParams(t.Params))
			}

			return nil
		},
	}
}

func joinParams(params []string) string {
	if len(params) == 0 {
		return "none"
	}

	s := params[0]
	for _, p := range params[1:] {
		s += ", " + p
	}

	return s
}

func newTranslationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translations [lang] <file>",
		Short: "List collected translation entries, optionally for one language",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, path := "", args[0]
			if len(args) == 2 {
				lang, path = args[0], args[1]
			}

			return printTable(cmd, path, translate.DefaultTranslations(), lang)
		},
	}
}

func newVariablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "variables <file>",
		Short: "List collected variable entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTable(cmd, args[0], translate.DefaultVariables(), "")
		},
	}
}

func printTable(cmd *cobra.Command, path string, cfg translate.Config, onlyLang string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	root, err := parseTML(data)
	if err != nil {
		return err
	}

	cfg.Recursive = true

	table, _, err := translate.Collect(root, cfg)
	if err != nil {
		return err
	}

	langs := make([]string, 0, len(table.ByLang))

	for lang := range table.ByLang {
		if onlyLang != "" && lang != onlyLang {
			continue
		}

		langs = append(langs, lang)
	}

	sort.Strings(langs)

	b := value.NewBuilder()

	var pairs []value.Pair

	for _, lang := range langs {
		ids := make([]string, 0, len(table.ByLang[lang]))
		for id := range table.ByLang[lang] {
			ids = append(ids, id)
		}

		sort.Strings(ids)

		for _, id := range ids {
			v := table.ByLang[lang][id]
			if lang == "" {
				pairs = append(pairs, b.Assign(id, v))
				continue
			}

			pairs = append(pairs, b.Pair(b.Array(b.Text(id), b.Text(lang)), v))
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), tml.Serialize(b.Object(pairs...), tml.DefaultSerializeOptions()))

	return err
}
