package translate

import "github.com/spf13/pflag"

// CLIFlags holds CLI flag names for a translate variant's CLI surface.
type CLIFlags struct {
	Strict string
	Lang   string
}

// CLIConfig holds the substitution flag values that transform.CLIConfig
// shares across the translations, profiles, and variables stages;
// [CLIConfig.Apply] overlays Strict onto one of [DefaultTranslations],
// [DefaultProfiles], or [DefaultVariables].
type CLIConfig struct {
	Flags  CLIFlags
	Strict bool
	Lang   string
}

// NewCLIConfig returns a new [CLIConfig] with default flag names.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{Flags: CLIFlags{Strict: "strict", Lang: "lang"}}
}

// RegisterFlags adds substitution flags to the given [*pflag.FlagSet].
func (c *CLIConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Strict, c.Flags.Strict, false,
		"fail on an unresolved reference instead of leaving it unchanged")
	flags.StringVar(&c.Lang, c.Flags.Lang, "",
		"language id to substitute under (leave empty for variables)")
}

// Apply overlays the Strict flag value onto base, returning the variant-
// specific [Config] to pass to [Collect] and [Substitute]. Lang is not
// part of [Config]; callers pass it to [Substitute] themselves.
func (c *CLIConfig) Apply(base Config) Config {
	base.Strict = c.Strict
	return base
}
