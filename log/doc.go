// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and the standard [slog] severity levels. Use [NewHandler] to
// build a handler directly from typed values, or [NewHandlerFromStrings] /
// [Config] when the level and format come from CLI flags (registered via
// [github.com/spf13/pflag], with shell completion via
// [github.com/spf13/cobra]).
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// The transform pipeline logs one debug-level record per stage (include
// expansion, template expansion, translation, profile and variable
// substitution, interpreter pass) so that a caller running with "--log-level=debug" can see progress
// through a large document.
package log
