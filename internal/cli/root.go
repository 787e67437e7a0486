package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/solve24/solver"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml"
	Database string // optional SQLite solution log
	Target   int64

	// Logger is built in PersistentPreRunE from Verbose.
	Logger *slog.Logger

	// NewRunID generates the id shared by rows saved in one invocation.
	// If nil, defaults to a UUIDv7.
	NewRunID func() string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the solve24 CLI.
//
// With exactly four numbers and no subcommand it behaves like "solve".
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve24 [A B C D]",
		Short: "Solve the 24 game",
		Long: `Find an arithmetic expression that uses four integers exactly once,
with + - * / and parentheses, and evaluates to exactly 24.

Examples:
  solve24 5 5 5 1
  solve24 solve --format json 6 11 9 2
  solve24 solve -- -3 -8 1 1
  solve24 batch --db ./solve24.db puzzles.yaml
  solve24 history --db ./solve24.db --limit 5`,
		Args:          numbersArgs(true),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runSolve(opts, args, cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite solution log (optional)")
	cmd.PersistentFlags().Int64Var(&opts.Target, "target", solver.DefaultTarget, "value the expression must reach")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

// newLogger returns a text slog logger on w: debug when verbose, warn otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runID returns a fresh run id from opts.NewRunID or a UUIDv7.
func (o *RootOptions) runID() string {
	if o.NewRunID != nil {
		return o.NewRunID()
	}
	return uuid.Must(uuid.NewV7()).String()
}

// logger returns opts.Logger, or a discarding logger when commands are
// executed without the root's PersistentPreRunE (as in unit tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return newLogger(io.Discard, false)
	}
	return o.Logger
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
