package solver_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solve24/internal/testutil"
	"github.com/katalvlaran/solve24/postfix"
	"github.com/katalvlaran/solve24/solver"
)

// assertValidAnswer checks that expr evaluates to target and uses exactly
// the input numbers.
func assertValidAnswer(t *testing.T, nums [4]int64, target int64, expr string) {
	t.Helper()

	v, err := testutil.EvalInfix(expr)
	require.NoError(t, err, expr)
	assert.Equal(t, 0, v.Cmp(new(big.Rat).SetInt64(target)), "%v: %s = %s", nums, expr, v.RatString())

	got, err := testutil.Numerals(expr)
	require.NoError(t, err, expr)
	want := append([]int64(nil), nums[:]...)
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	assert.Equal(t, want, got, "%v: %s must use each number once", nums, expr)
}

func TestTrySolve_KnownSolvable(t *testing.T) {
	for _, nums := range [][4]int64{{5, 5, 5, 1}, {6, 11, 9, 2}, {3, 3, 8, 8}, {1, 3, 4, 6}, {10, 10, 4, 4}} {
		expr, ok := solver.TrySolve(nums)
		require.True(t, ok, "%v must be solvable", nums)
		assert.NotEmpty(t, expr)
		assertValidAnswer(t, nums, 24, expr)
	}
}

func TestTrySolve_NoSolution(t *testing.T) {
	for _, nums := range [][4]int64{{1, 1, 1, 1}, {13, 13, 13, 13}, {1, 1, 1, 2}, {2, 2, 2, 2}} {
		expr, ok := solver.TrySolve(nums)
		assert.False(t, ok, "%v", nums)
		assert.Empty(t, expr)
	}
}

// TestSolve_FirstInGenerationOrder pins the exact answers: the first match
// in shape order, then lexicographic candidate order.
func TestSolve_FirstInGenerationOrder(t *testing.T) {
	cases := []struct {
		nums     [4]int64
		expr     string
		post     postfix.Candidate
		shape    postfix.Shape
		examined int
	}{
		{[4]int64{5, 5, 5, 1}, "5 * (5 - 1 / 5)", "1243/-*", postfix.ShapeRightComb, 119},
		{[4]int64{6, 11, 9, 2}, "(6 + (11 + (9 - 2)))", "1234-++", postfix.ShapeRightComb, 17},
		{[4]int64{1, 2, 3, 4}, "1 * 2 * 3 * 4", "1234***", postfix.ShapeRightComb, 43},
		{[4]int64{3, 3, 8, 8}, "8 / (3 - 8 / 3)", "3142/-/", postfix.ShapeRightComb, 888},
		{[4]int64{10, 10, 4, 4}, "(10 * 10 - 4) / 4", "12*3-4/", postfix.ShapeLeftComb, 4680},
		{[4]int64{1, 2, 4, 12}, "1 / (2 / (4 * 12))", "1234*//", postfix.ShapeRightComb, 48},
	}
	for _, tc := range cases {
		res, err := solver.Solve(tc.nums)
		require.NoError(t, err, "%v", tc.nums)
		assert.Equal(t, tc.expr, res.Expression, "%v", tc.nums)
		assert.Equal(t, tc.post, res.Postfix, "%v", tc.nums)
		assert.Equal(t, tc.shape, res.Shape, "%v", tc.nums)
		assert.Equal(t, tc.nums, res.Numbers)
		assert.Equal(t, int64(24), res.Target)
		assert.Equal(t, tc.examined, res.Examined, "%v", tc.nums)
		assertValidAnswer(t, tc.nums, 24, res.Expression)
	}
}

func TestSolve_NoSolutionExhaustsEveryCandidate(t *testing.T) {
	res, err := solver.Solve([4]int64{1, 1, 1, 1})
	assert.ErrorIs(t, err, solver.ErrNoSolution)
	require.NotNil(t, res)
	assert.Equal(t, len(postfix.Shapes())*postfix.CandidatesPerShape, res.Examined)
	assert.Equal(t, [4]int64{1, 1, 1, 1}, res.Numbers)
	assert.Empty(t, res.Expression)
	assert.Empty(t, res.Postfix)
}

func TestSolve_DivisionByZeroIsSkipped(t *testing.T) {
	// Many candidates divide by (0 - 0) or by 0 directly; none may abort the search.
	res, err := solver.Solve([4]int64{0, 0, 0, 24})
	require.NoError(t, err)
	assert.Equal(t, "(0 + (0 + (0 + 24)))", res.Expression)

	_, err = solver.Solve([4]int64{0, 0, 0, 0})
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolve_NegativeInputs(t *testing.T) {
	nums := [4]int64{-3, -8, 1, 1}
	res, err := solver.Solve(nums)
	require.NoError(t, err)
	assertValidAnswer(t, nums, 24, res.Expression)
}

func TestSolve_LargeInputsDoNotOverflow(t *testing.T) {
	// 2^62 · 3 does not fit in int64; a wrapping evaluator would miss this.
	const p = int64(1) << 62
	nums := [4]int64{p, 3, p, 8}
	res, err := solver.Solve(nums)
	require.NoError(t, err)
	assert.Equal(t, "4611686018427387904 * 3 / (4611686018427387904 / 8)", res.Expression)
	assertValidAnswer(t, nums, 24, res.Expression)
}

func TestSolve_WithTarget(t *testing.T) {
	res, err := solver.Solve([4]int64{1, 2, 3, 4}, solver.WithTarget(10))
	require.NoError(t, err)
	assert.Equal(t, "(1 + (2 + (3 + 4)))", res.Expression)
	assert.Equal(t, int64(10), res.Target)
	assert.Equal(t, 1, res.Examined)

	_, err = solver.Solve([4]int64{1, 1, 1, 1}, solver.WithTarget(1000))
	assert.ErrorIs(t, err, solver.ErrNoSolution)
}

func TestSolve_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := solver.Solve([4]int64{10, 10, 4, 4}, solver.WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "shape searched")
	assert.Contains(t, out, "shape=NNNNOOO")
	assert.Contains(t, out, "shape=NNONONO")
	assert.NotContains(t, out, "shape=NNONNOO", "search stops at the first hit")
	assert.Contains(t, out, "solution found")

	// nil keeps the default discard logger.
	_, err = solver.Solve([4]int64{5, 5, 5, 1}, solver.WithLogger(nil))
	assert.NoError(t, err)
}

func TestDefaultOptions(t *testing.T) {
	o := solver.DefaultOptions()
	assert.Equal(t, int64(solver.DefaultTarget), o.Target)
	assert.NotNil(t, o.Logger)
}

// TestTrySolve_AllClassicHands checks every multiset of 1..9: any answer
// must evaluate to 24 and use each input exactly once.
func TestTrySolve_AllClassicHands(t *testing.T) {
	if testing.Short() {
		t.Skip("exhaustive hand sweep")
	}

	solved := 0
	for a := int64(1); a <= 9; a++ {
		for b := a; b <= 9; b++ {
			for c := b; c <= 9; c++ {
				for d := c; d <= 9; d++ {
					nums := [4]int64{a, b, c, d}
					expr, ok := solver.TrySolve(nums)
					if !ok {
						continue
					}
					solved++
					assertValidAnswer(t, nums, 24, expr)
				}
			}
		}
	}
	assert.Equal(t, 404, solved)
}
