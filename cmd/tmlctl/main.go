// Command tmlctl is the CLI boundary over the document model: parsing,
// serialization, the transform pipeline, and BTML conversion.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	tlog "go.tmlkit.dev/tml/log"
	"go.tmlkit.dev/tml/profile"
	"go.tmlkit.dev/tml/version"
)

type globals struct {
	log     *tlog.Config
	profile *profile.Config
	prof    *profile.Profiler
}

func main() {
	g := &globals{
		log:     tlog.NewConfig(),
		profile: profile.NewConfig(),
	}

	rootCmd := &cobra.Command{
		Use:           "tmlctl",
		Short:         "Inspect and transform TML/BTML documents",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := g.log.NewHandler(os.Stderr)
			if err != nil {
				return fmt.Errorf("configuring logging: %w", err)
			}

			slog.SetDefault(slog.New(handler))

			g.prof = g.profile.NewProfiler()

			return g.prof.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return g.prof.Stop()
		},
	}

	g.log.RegisterFlags(rootCmd.PersistentFlags())
	g.profile.RegisterFlags(rootCmd.PersistentFlags())

	if err := g.log.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := g.profile.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	rootCmd.AddCommand(
		newLoadTMLCmd(),
		newLoadBTMLCmd(),
		newPrintCmd(),
		newPrintTMLCmd(),
		newPrintTMLValuesCmd(),
		newTemplatesCmd(),
		newTranslationsCmd(),
		newVariablesCmd(),
		newIncludeCmd(false, false),
		newIncludeCmd(true, false),
		newIncludeCmd(false, true),
		newIncludeCmd(true, true),
		newTML2BTMLCmd(),
		newBTML2TMLCmd(),
		newInterpretCmd(),
		newAllFeaturesCmd(),
		newValidateCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) %s/%s built %s by %s\n",
				version.Version, version.Revision, version.GoOS, version.GoArch,
				version.BuildDate, version.BuildUser)

			return nil
		},
	}
}
