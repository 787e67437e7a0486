package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solve24/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	Limit int
	RunID string // when set, list only this run, oldest first
}

// HistoryEntry is one logged outcome in structured output.
type HistoryEntry struct {
	HandResult `yaml:",inline"`
	RunID      string    `json:"run_id" yaml:"run_id"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// HistoryOutput is the structured payload of the history command.
type HistoryOutput struct {
	Entries []HistoryEntry `json:"entries" yaml:"entries"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List logged solutions, newest first",
		Long: `List hands recorded in the --db solution log, newest first.
With --run, list every hand of one batch run in solving order instead.

Examples:
  solve24 history --db ./solve24.db
  solve24 history --db ./solve24.db --limit 5 --format json
  solve24 history --db ./solve24.db --run 0192f3c4-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum entries to show (0 = all, ignored with --run)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show only the records of this run id")

	return cmd
}

func runHistory(rootOpts *RootOptions, opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	if rootOpts.Database == "" {
		return formatter.fail(ExitCommandError, ErrCodeBadArgs, "--db is required", nil)
	}

	st, err := openStore(rootOpts)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "failed to open database", err)
	}
	defer st.Close()

	var recs []store.Record
	if opts.RunID != "" {
		recs, err = st.ListRun(cmd.Context(), opts.RunID)
	} else {
		recs, err = st.List(cmd.Context(), opts.Limit)
	}
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "failed to read history", err)
	}

	out := HistoryOutput{Entries: make([]HistoryEntry, 0, len(recs))}
	for _, rec := range recs {
		out.Entries = append(out.Entries, historyEntry(rec))
	}

	err = formatter.Success(out, func(w io.Writer) error {
		return writeHistoryText(w, out)
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	return nil
}

func historyEntry(rec store.Record) HistoryEntry {
	return HistoryEntry{
		HandResult: HandResult{
			Numbers:    rec.Numbers,
			Target:     rec.Target,
			Solved:     rec.Solved,
			Expression: rec.Expression,
			Postfix:    rec.Postfix,
			Shape:      rec.Shape,
			Examined:   rec.Examined,
		},
		RunID:     rec.RunID,
		CreatedAt: rec.CreatedAt,
	}
}

func writeHistoryText(w io.Writer, out HistoryOutput) error {
	if len(out.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No history.")
		return err
	}
	for _, e := range out.Entries {
		_, err := fmt.Fprintf(w, "%s  %s -> %s\n",
			e.CreatedAt.UTC().Format(time.RFC3339),
			handLabel(e.Numbers, e.Target),
			answerText(e.Solved, e.Expression))
		if err != nil {
			return err
		}
	}
	return nil
}
