package transform

import (
	"fmt"
	"log/slog"

	"go.tmlkit.dev/tml/include"
	"go.tmlkit.dev/tml/interp"
	"go.tmlkit.dev/tml/tmpl"
	"go.tmlkit.dev/tml/translate"
	"go.tmlkit.dev/tml/value"
)

// Pipeline holds the configuration for every stage of the document
// transform and runs them in the fixed order: include resolution,
// template expansion, translation substitution, profile substitution,
// variable substitution, expression evaluation.
type Pipeline struct {
	Loader          include.Loader
	IncludeConfig   include.Config
	TemplateOptions tmpl.CollectOptions
	Translations    translate.Config
	Profiles        translate.Config
	Variables       translate.Config
	// Lang selects the language row used by the translations and
	// profiles stages. Variables are always language-independent.
	Lang string
}

// Run applies every stage to root in order and returns the fully
// simplified tree. root must be a [value.TagObject] tree.
func (p Pipeline) Run(root value.Value) (value.Value, error) {
	return p.RunLogger(root, slog.Default())
}

// RunLogger behaves like [Pipeline.Run] but logs one debug record per
// stage to logger instead of the package default.
func (p Pipeline) RunLogger(root value.Value, logger *slog.Logger) (value.Value, error) {
	tree := root

	logger.Debug("transform: resolving includes")

	tree, err := include.Resolve(tree, p.Loader, p.IncludeConfig)
	if err != nil {
		return value.Value{}, fmt.Errorf("include stage: %w", err)
	}

	logger.Debug("transform: expanding templates")

	templates, tree, err := tmpl.Collect(tree, p.TemplateOptions)
	if err != nil {
		return value.Value{}, fmt.Errorf("template collect: %w", err)
	}

	tree, err = tmpl.Expand(tree, templates)
	if err != nil {
		return value.Value{}, fmt.Errorf("template expand: %w", err)
	}

	logger.Debug("transform: substituting translations", "lang", p.Lang)

	tree, err = substituteBlock(tree, p.Translations, p.Lang)
	if err != nil {
		return value.Value{}, fmt.Errorf("translations stage: %w", err)
	}

	logger.Debug("transform: substituting profiles", "lang", p.Lang)

	tree, err = substituteBlock(tree, p.Profiles, p.Lang)
	if err != nil {
		return value.Value{}, fmt.Errorf("profiles stage: %w", err)
	}

	logger.Debug("transform: substituting variables")

	tree, err = substituteBlock(tree, p.Variables, "")
	if err != nil {
		return value.Value{}, fmt.Errorf("variables stage: %w", err)
	}

	logger.Debug("transform: evaluating expressions")

	tree, err = interp.Expand(tree)
	if err != nil {
		return value.Value{}, fmt.Errorf("expression stage: %w", err)
	}

	return tree, nil
}

// substituteBlock runs one translate variant's collect-then-substitute
// pair: entries are gathered into a [translate.Table], the defining
// block is pruned per cfg, and every reference in the remaining tree is
// resolved against lang.
func substituteBlock(tree value.Value, cfg translate.Config, lang string) (value.Value, error) {
	table, tree, err := translate.Collect(tree, cfg)
	if err != nil {
		return value.Value{}, err
	}

	return translate.Substitute(tree, table, lang, cfg)
}
