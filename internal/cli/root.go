// Package cli implements the cowbox command-line interface: a driver that
// exercises copy-on-write handles, shared expression trees and pictures.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mesh-intelligence/cowbox/internal/metrics"
	"github.com/mesh-intelligence/cowbox/internal/paths"
	"github.com/mesh-intelligence/cowbox/pkg/cow"
	"github.com/mesh-intelligence/cowbox/pkg/cowbox"
	"github.com/mesh-intelligence/cowbox/pkg/types"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	format    string
	trace     bool
	stats     bool
}

// app is the state shared by the commands of one root command.
type app struct {
	flags     rootFlags
	configDir string
	dataDir   string
	cfg       types.Config
	logger    *slog.Logger
	collector *metrics.Collector
}

// NewRootCmd creates the top-level "cowbox" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "cowbox",
		Short: "Copy-on-write handles and shared expression trees",
		Long: "cowbox drives reference-counted copy-on-write handles: points that split\n" +
			"on write, expression trees that share subtrees, and character pictures.",
		Version:            cowbox.Version,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.report,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/cowbox)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/cowbox)")
	root.PersistentFlags().StringVar(&a.flags.format, "format", types.DefaultFormat, "output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&a.flags.trace, "trace", false, "log box lifecycle events to stderr")
	root.PersistentFlags().BoolVar(&a.flags.stats, "stats", false, "print box allocation counters after the command")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newPointCmd(a))
	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newPictureCmd(a))
	root.AddCommand(newReplCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
	os.Exit(exitSuccess)
}

// setup resolves directories, loads config.yaml and builds the logger and
// collector used by every subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	v, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}

	cfg := configFromViper(v)
	if cmd.Flags().Changed("format") {
		cfg.Format = a.flags.format
	}
	if cmd.Flags().Changed("trace") {
		cfg.Trace = a.flags.trace
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("format %q: %w", cfg.Format, err))
	}
	a.cfg = cfg

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve data dir: %w", err))
	}
	a.dataDir = dataDir

	if cfg.Trace {
		a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		a.logger = slog.New(slog.DiscardHandler)
	}
	a.collector = metrics.NewCollector(a.logger)
	return nil
}

// report prints the allocation counters when --stats is set.
func (a *app) report(cmd *cobra.Command, args []string) error {
	if !a.flags.stats || a.collector == nil {
		return nil
	}
	snap, err := a.collector.Snapshot()
	if err != nil {
		return sysError(fmt.Errorf("gather stats: %w", err))
	}
	return a.emit(cmd.OutOrStdout(), snap, func(p *printer) {
		p.line("boxes allocated: %d", snap.Allocated)
		p.line("boxes duplicated: %d", snap.Duplicated)
		p.line("boxes freed: %d", snap.Freed)
		p.line("boxes live: %d", snap.Live)
	})
}

// boxOptions returns the options that attach the collector to new handles.
func (a *app) boxOptions() []cow.Option {
	if a.collector == nil {
		return nil
	}
	return []cow.Option{cow.WithTracker(a.collector)}
}

// cliError carries the exit code for an error returned by a command.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }

func (e *cliError) Unwrap() error { return e.err }

func userError(err error) error { return &cliError{code: exitUserError, err: err} }

func sysError(err error) error { return &cliError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
// Errors not produced by a command (flag parsing) are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUserError
}
