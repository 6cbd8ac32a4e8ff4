// Package profile adds runtime profiling capabilities to CLI applications.
//
// It supports CPU, heap, allocs, and goroutine profiles through command-line
// flags. The document pipeline is CPU-bound and single-threaded, so the
// contention-oriented profiles (block, mutex, threadcreate) are not exposed.
// Use [Config.RegisterFlags] to add CLI flags and [Config.RegisterCompletions]
// to wire up shell completions.
//
// Typical usage creates a [Config], registers flags, then creates a [Profiler]
// to wrap command execution. [Config.NewProfiler] copies the Config, so it
// is called after flag parsing:
//
//	cfg := profile.NewConfig()
//
//	var p *profile.Profiler
//
//	rootCmd := &cobra.Command{
//	    PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
//	        p = cfg.NewProfiler()
//	        return p.Start()
//	    },
//	    PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
//	        return p.Stop()
//	    },
//	}
//
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
// Users can then enable profiling via flags like --cpu-profile=cpu.prof.
package profile
