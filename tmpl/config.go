package tmpl

import "github.com/spf13/pflag"

// CLIFlags holds CLI flag names for template collection, letting callers
// customize flag names while keeping sensible defaults via
// [NewCLIConfig].
type CLIFlags struct {
	Remove    string
	Recursive string
}

// CLIConfig holds CLI flag values for template collection.
//
// Create instances with [NewCLIConfig] and register CLI flags with
// [CLIConfig.RegisterFlags]. Use [CLIConfig.Options] to build a
// [CollectOptions].
type CLIConfig struct {
	Flags     CLIFlags
	Keep      bool
	Recursive bool
}

// NewCLIConfig returns a new [CLIConfig] with default flag names.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		Flags: CLIFlags{
			Remove:    "template-keep",
			Recursive: "template-recursive",
		},
	}
}

// RegisterFlags adds template-collection flags to the given
// [*pflag.FlagSet].
func (c *CLIConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Keep, c.Flags.Remove, false, "keep template definitions in the output tree instead of removing them")
	flags.BoolVar(&c.Recursive, c.Flags.Recursive, c.Recursive, "collect template definitions nested below the top level")
}

// Options builds a [CollectOptions] from the flag values.
func (c *CLIConfig) Options() CollectOptions {
	return CollectOptions{Remove: !c.Keep, Recursive: c.Recursive}
}
