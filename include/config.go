package include

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CLIFlags holds CLI flag names for include-resolution configuration,
// allowing callers to customize flag names while keeping sensible
// defaults via [NewCLIConfig].
type CLIFlags struct {
	Once   string
	Marker string
	Buffer string
}

// CLIConfig holds CLI flag values for include-resolution configuration.
//
// Create instances with [NewCLIConfig] and register CLI flags with
// [CLIConfig.RegisterFlags]. Use [CLIConfig.Config] to build a [Config].
type CLIConfig struct {
	Flags  CLIFlags
	Once   bool
	Marker string
	Buffer bool
}

// NewCLIConfig returns a new [CLIConfig] with default flag names.
func NewCLIConfig() *CLIConfig {
	return &CLIConfig{
		Flags: CLIFlags{
			Once:   "include-once",
			Marker: "include-once-marker",
			Buffer: "include-buffer",
		},
	}
}

// RegisterFlags adds include-resolution flags to the given
// [*pflag.FlagSet].
func (c *CLIConfig) RegisterFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.Once, c.Flags.Once, false,
		"skip files already included once in this run")
	flags.StringVar(&c.Marker, c.Flags.Marker, "empty",
		"marker left by a repeated include under --include-once, one of: empty, record, comment")
	flags.BoolVar(&c.Buffer, c.Flags.Buffer, true,
		"cache parsed documents per absolute path within one run")
}

// RegisterCompletions registers shell completions for include flags on
// cmd.
func (c *CLIConfig) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Marker,
		cobra.FixedCompletions([]string{"empty", "record", "comment"}, cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Marker, err)
	}

	return nil
}

// Config builds a resolver [Config] from the flag values.
func (c *CLIConfig) Config() (Config, error) {
	var marker OnceMarker

	switch c.Marker {
	case "empty":
		marker = OnceMarkerEmpty
	case "record":
		marker = OnceMarkerEmptyRecord
	case "comment":
		marker = OnceMarkerComment
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownMarker, c.Marker)
	}

	return Config{Once: c.Once, Marker: marker, Buffer: c.Buffer}, nil
}
