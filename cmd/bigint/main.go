package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"bigint/internal/config"
	"bigint/internal/version"
)

// app carries state shared by subcommands for one invocation.
type app struct {
	root     *cobra.Command
	cfg      config.Config
	cleanups []func()
}

// newApp builds the command tree. Each call yields independent flag state.
func newApp() *app {
	a := &app{cfg: config.Default()}
	a.root = &cobra.Command{
		Use:          "bigint",
		Short:        "Arbitrary-precision signed integer calculator",
		Long:         `bigint evaluates integer arithmetic of any size: a demo, single expressions, and whole batch files`,
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	a.root.AddCommand(a.newDemoCmd())
	a.root.AddCommand(a.newEvalCmd())
	a.root.AddCommand(a.newBatchCmd())
	a.root.AddCommand(newVersionCmd())

	flags := a.root.PersistentFlags()
	flags.String("config", "", "path to bigint.toml (default: search upwards from the working directory)")
	flags.String("color", "auto", "colorize output (auto|on|off)")
	flags.Bool("timings", false, "show timing information")
	flags.String("trace", "", "trace output file (- for stderr)")
	flags.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	flags.String("trace-mode", "stream", "trace storage mode (stream|ring|both)")
	flags.Int("trace-ring-size", 4096, "ring buffer capacity for ring mode")
	flags.Duration("trace-heartbeat", 0, "heartbeat interval (0 disables)")
	flags.String("cpu-profile", "", "write CPU profile to file")
	flags.String("mem-profile", "", "write heap profile to file")
	flags.String("runtime-trace", "", "write runtime trace to file")
	return a
}

// setup runs before every subcommand: config, colour, tracing, profiling.
func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	if err := a.applyColor(cmd); err != nil {
		return err
	}
	cleanupTrace, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	a.cleanups = append(a.cleanups, cleanupTrace)
	cleanupProf, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	a.cleanups = append(a.cleanups, cleanupProf)
	return nil
}

// cleanup releases tracing and profiling in reverse order of setup.
func (a *app) cleanup() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

// execute runs the command tree with args and always cleans up.
func (a *app) execute(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	defer a.cleanup()
	return a.root.ExecuteContext(ctx)
}

// main runs the CLI; a returned error exits with status 1.
func main() {
	a := newApp()
	if err := a.execute(context.Background(), os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
