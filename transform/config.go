package transform

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go.tmlkit.dev/tml/include"
	"go.tmlkit.dev/tml/tmpl"
	"go.tmlkit.dev/tml/translate"
)

// CLIConfig composes each stage's CLI-facing Config into one flag set, so
// a command that runs the full pipeline registers one coherent group of
// flags instead of wiring five packages by hand.
type CLIConfig struct {
	Include     *include.CLIConfig
	Template    *tmpl.CLIConfig
	Translation *translate.CLIConfig
}

// NewCLIConfig returns a [CLIConfig] with every stage's defaults.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		Include:     include.NewCLIConfig(),
		Template:    tmpl.NewCLIConfig(),
		Translation: translate.NewCLIConfig(),
	}
}

// RegisterFlags adds every stage's flags to flags. The translation
// stage's "--lang" flag doubles as the language selector for the profiles
// stage, and its "--strict" flag as the strictness switch for the
// profiles and variables stages.
func (c *CLIConfig) RegisterFlags(flags *pflag.FlagSet) {
	c.Include.RegisterFlags(flags)
	c.Template.RegisterFlags(flags)
	c.Translation.RegisterFlags(flags)
}

// RegisterCompletions registers shell completions for every stage that
// defines any.
func (c *CLIConfig) RegisterCompletions(cmd *cobra.Command) error {
	return c.Include.RegisterCompletions(cmd)
}

// Pipeline builds a [Pipeline] from the parsed flag values. loader backs
// the include stage.
func (c *CLIConfig) Pipeline(loader include.Loader) (Pipeline, error) {
	includeCfg, err := c.Include.Config()
	if err != nil {
		return Pipeline{}, err
	}

	return Pipeline{
		Loader:          loader,
		IncludeConfig:   includeCfg,
		TemplateOptions: c.Template.Options(),
		Translations:    c.Translation.Apply(translate.DefaultTranslations()),
		Profiles:        c.Translation.Apply(translate.DefaultProfiles()),
		Variables:       c.Translation.Apply(translate.DefaultVariables()),
		Lang:            c.Translation.Lang,
	}, nil
}
