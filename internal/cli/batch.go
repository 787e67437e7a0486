package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solve24/solver"
)

// BatchOutput is the structured payload of the batch command.
type BatchOutput struct {
	RunID   string       `json:"run_id" yaml:"run_id"`
	Solved  int          `json:"solved" yaml:"solved"`
	Total   int          `json:"total" yaml:"total"`
	Results []HandResult `json:"results" yaml:"results"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <puzzles.yaml|puzzles.json>",
		Short: "Solve every hand in a puzzle file",
		Long: `Solve every hand listed in a YAML or JSON puzzle file:

  puzzles:
    - numbers: [5, 5, 5, 1]
    - numbers: [1, 2, 3, 4]
      target: 10

Exits 1 if any hand has no solution. With --db, every outcome is logged
under a single run id.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, args[0], cmd)
		},
	}
}

func runBatch(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
	logger := rootOpts.logger()

	pf, err := LoadPuzzles(path)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeLoadFailed, "failed to load puzzles", err)
	}

	st, err := openStore(rootOpts)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "failed to open database", err)
	}
	defer st.Close()

	out := BatchOutput{
		RunID:   rootOpts.runID(),
		Total:   len(pf.Puzzles),
		Results: make([]HandResult, 0, len(pf.Puzzles)),
	}
	for _, p := range pf.Puzzles {
		target := rootOpts.Target
		if p.Target != nil {
			target = *p.Target
		}
		res, err := solveHand(cmd.Context(), rootOpts, st, p.Hand(), target, out.RunID)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "solve failed", err)
		}
		if res.Solved {
			out.Solved++
		}
		out.Results = append(out.Results, res)
	}
	logger.Info("batch complete", "run_id", out.RunID, "solved", out.Solved, "total", out.Total)

	err = formatter.Success(out, func(w io.Writer) error {
		return writeBatchText(w, out)
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if out.Solved < out.Total {
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

func writeBatchText(w io.Writer, out BatchOutput) error {
	for _, r := range out.Results {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", handLabel(r.Numbers, r.Target), answerText(r.Solved, r.Expression)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "solved %d/%d\n", out.Solved, out.Total)
	return err
}

// handLabel formats a hand as "[5 5 5 1]", noting any non-default target.
func handLabel(nums [4]int64, target int64) string {
	if target == solver.DefaultTarget {
		return fmt.Sprint(nums)
	}
	return fmt.Sprintf("%v (target %d)", nums, target)
}

func answerText(solved bool, expr string) string {
	if !solved {
		return "no solution"
	}
	return expr
}
