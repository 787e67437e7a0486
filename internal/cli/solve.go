package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/solve24/internal/store"
	"github.com/katalvlaran/solve24/postfix"
	"github.com/katalvlaran/solve24/solver"
)

// HandResult is the outcome for one hand, as reported by solve and batch.
type HandResult struct {
	Numbers    [postfix.Operands]int64 `json:"numbers" yaml:"numbers,flow"`
	Target     int64                   `json:"target" yaml:"target"`
	Solved     bool                    `json:"solved" yaml:"solved"`
	Expression string                  `json:"expression,omitempty" yaml:"expression,omitempty"`
	Postfix    string                  `json:"postfix,omitempty" yaml:"postfix,omitempty"`
	Shape      string                  `json:"shape,omitempty" yaml:"shape,omitempty"`
	Examined   int                     `json:"examined" yaml:"examined"`
	Cached     bool                    `json:"cached,omitempty" yaml:"cached,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "solve A B C D",
		Short: "Solve one hand of four integers",
		Long: `Search for an expression over the four integers that evaluates to the
target (24 unless --target is given).

Prints "Solution found: <expression>" and exits 0, or prints
"No solution found!" and exits 1. Negative numbers must follow "--".`,
		Args: numbersArgs(false),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(rootOpts, args, cmd)
		},
	}
}

func runSolve(rootOpts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}

	nums, err := parseNumbers(args)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeBadArgs, "invalid numbers", err)
	}

	st, err := openStore(rootOpts)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "failed to open database", err)
	}
	defer st.Close()

	res, err := solveHand(cmd.Context(), rootOpts, st, nums, rootOpts.Target, rootOpts.runID())
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, "solve failed", err)
	}

	err = formatter.Success(res, func(w io.Writer) error {
		return writeSolveText(w, res)
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to write output", err)
	}
	if !res.Solved {
		return &ExitError{Code: ExitFailure}
	}
	return nil
}

func writeSolveText(w io.Writer, res HandResult) error {
	if !res.Solved {
		_, err := fmt.Fprintln(w, "No solution found!")
		return err
	}
	_, err := fmt.Fprintf(w, "Solution found: %s\n", res.Expression)
	return err
}

// solveHand answers one hand, consulting and then updating st when it is
// not nil. Every answer, cached or fresh, is saved under runID.
func solveHand(ctx context.Context, rootOpts *RootOptions, st *store.Store, nums [postfix.Operands]int64, target int64, runID string) (HandResult, error) {
	logger := rootOpts.logger()

	if st != nil {
		rec, err := st.Get(ctx, nums, target)
		switch {
		case err == nil:
			logger.Debug("cache hit", "numbers", nums, "target", target, "run_id", runID)
			rec.RunID = runID
			rec.CreatedAt = time.Time{}
			if err := st.Save(ctx, rec); err != nil {
				return HandResult{}, err
			}
			return HandResult{
				Numbers:    rec.Numbers,
				Target:     rec.Target,
				Solved:     rec.Solved,
				Expression: rec.Expression,
				Postfix:    rec.Postfix,
				Shape:      rec.Shape,
				Examined:   rec.Examined,
				Cached:     true,
			}, nil
		case !errors.Is(err, store.ErrNotFound):
			return HandResult{}, err
		}
	}

	out := HandResult{Numbers: nums, Target: target}
	res, err := solver.Solve(nums, solver.WithTarget(target), solver.WithLogger(logger))
	switch {
	case err == nil:
		out.Solved = true
		out.Expression = res.Expression
		out.Postfix = string(res.Postfix)
		out.Shape = string(res.Shape)
		out.Examined = res.Examined
	case errors.Is(err, solver.ErrNoSolution):
		out.Examined = res.Examined
	default:
		return HandResult{}, err
	}

	if st != nil {
		err = st.Save(ctx, store.Record{
			Numbers:    out.Numbers,
			Target:     out.Target,
			Solved:     out.Solved,
			Expression: out.Expression,
			Postfix:    out.Postfix,
			Shape:      out.Shape,
			Examined:   out.Examined,
			RunID:      runID,
		})
		if err != nil {
			return HandResult{}, err
		}
	}
	return out, nil
}

// numbersArgs accepts exactly four positional integers, or none when
// allowEmpty is set.
func numbersArgs(allowEmpty bool) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if allowEmpty && len(args) == 0 {
			return nil
		}
		if len(args) != postfix.Operands {
			return NewExitError(ExitCommandError,
				fmt.Sprintf("expected %d numbers, got %d", postfix.Operands, len(args)))
		}
		return nil
	}
}

// parseNumbers converts exactly four decimal arguments.
func parseNumbers(args []string) ([postfix.Operands]int64, error) {
	var nums [postfix.Operands]int64
	if len(args) != len(nums) {
		return nums, fmt.Errorf("expected %d numbers, got %d", len(nums), len(args))
	}
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nums, fmt.Errorf("%q is not an integer", a)
		}
		nums[i] = n
	}
	return nums, nil
}

// openStore opens the database named by --db, or returns nil when unset.
func openStore(rootOpts *RootOptions) (*store.Store, error) {
	if rootOpts.Database == "" {
		return nil, nil
	}
	return store.Open(rootOpts.Database)
}
