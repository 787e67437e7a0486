package rational_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/solve24/rational"
)

// mustNew builds num/den or fails the test.
func mustNew(t *testing.T, num, den int64) rational.Rational {
	t.Helper()
	r, err := rational.New(num, den)
	require.NoError(t, err)

	return r
}

func TestFromInt_EvaluateIntRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 24, -24, 1 << 40, math.MaxInt64, math.MinInt64} {
		got, err := rational.FromInt(n).EvaluateInt()
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, 0, got.Cmp(big.NewInt(n)), "n=%d", n)
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(1, 0)
	assert.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestZeroValue(t *testing.T) {
	var z rational.Rational
	assert.True(t, z.IsZero())
	assert.Equal(t, "0", z.String())

	sum := z.Add(rational.FromInt(3))
	assert.True(t, sum.Equal(rational.FromInt(3)))
}

func TestAdd_SharedDenominatorKeepsDenominator(t *testing.T) {
	a := mustNew(t, 1, 6)
	b := mustNew(t, 2, 6)

	sum := a.Add(b)
	assert.Equal(t, int64(3), sum.Num().Int64())
	assert.Equal(t, int64(6), sum.Den().Int64(), "shared denominators are not multiplied")

	diff := b.Sub(a)
	assert.Equal(t, int64(1), diff.Num().Int64())
	assert.Equal(t, int64(6), diff.Den().Int64())
}

func TestAdd_CrossMultiply(t *testing.T) {
	// 1/2 + 1/3 = (1·3 + 1·2)/(2·3) = 5/6
	sum := mustNew(t, 1, 2).Add(mustNew(t, 1, 3))
	assert.Equal(t, int64(5), sum.Num().Int64())
	assert.Equal(t, int64(6), sum.Den().Int64())

	// 1/2 - 1/3 = 1/6
	diff := mustNew(t, 1, 2).Sub(mustNew(t, 1, 3))
	assert.Equal(t, "1/6", diff.String())
}

func TestMul(t *testing.T) {
	p := mustNew(t, 2, 3).Mul(mustNew(t, 9, 4))
	assert.Equal(t, int64(18), p.Num().Int64())
	assert.Equal(t, int64(12), p.Den().Int64())
	assert.Equal(t, "3/2", p.String())
}

func TestDiv(t *testing.T) {
	q, err := mustNew(t, 2, 3).Div(mustNew(t, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, int64(10), q.Num().Int64())
	assert.Equal(t, int64(12), q.Den().Int64())
}

func TestDiv_ByZeroIffNumeratorZero(t *testing.T) {
	_, err := rational.FromInt(7).Div(rational.FromInt(0))
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	// 0/5 is zero even though its denominator is not 1.
	_, err = rational.FromInt(7).Div(mustNew(t, 0, 5))
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)

	// A fraction with a non-trivial denominator is a valid divisor.
	q, err := rational.FromInt(7).Div(mustNew(t, 1, 5))
	require.NoError(t, err)
	assert.True(t, q.Equal(rational.FromInt(35)))
}

func TestOperationsDoNotMutateOperands(t *testing.T) {
	a := mustNew(t, 3, 4)
	b := mustNew(t, 5, 6)

	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(b)
	_, _ = a.Div(b)
	_ = a.Simplify()

	assert.Equal(t, "3/4", a.Num().String()+"/"+a.Den().String())
	assert.Equal(t, "5/6", b.Num().String()+"/"+b.Den().String())
}

func TestEvaluateInt(t *testing.T) {
	v, err := mustNew(t, 48, 2).EvaluateInt()
	require.NoError(t, err)
	assert.Equal(t, int64(24), v.Int64())

	v, err = mustNew(t, 48, -2).EvaluateInt()
	require.NoError(t, err)
	assert.Equal(t, int64(-24), v.Int64())

	_, err = mustNew(t, 47, 2).EvaluateInt()
	assert.ErrorIs(t, err, rational.ErrNotInteger)
}

func TestInt64_OutOfRange(t *testing.T) {
	huge := rational.FromInt(math.MaxInt64).Mul(rational.FromInt(4))
	_, err := huge.Int64()
	assert.ErrorIs(t, err, rational.ErrOutOfRange)

	_, err = mustNew(t, 1, 2).Int64()
	assert.ErrorIs(t, err, rational.ErrNotInteger)
}

func TestSimplify(t *testing.T) {
	cases := []struct {
		num, den int64
		want     string
	}{
		{6, 8, "3/4"},
		{-6, 8, "-3/4"},
		{6, -8, "-3/4"},
		{-6, -8, "3/4"},
		{0, -5, "0"},
		{24, 1, "24"},
		{72, 3, "24"},
	}
	for _, tc := range cases {
		s := mustNew(t, tc.num, tc.den).Simplify()
		assert.Equal(t, tc.want, s.String(), "%d/%d", tc.num, tc.den)
		assert.Equal(t, 1, s.Den().Sign(), "denominator must be positive after Simplify")
	}
}

func TestSimplify_PreservesIntegerTest(t *testing.T) {
	r := mustNew(t, 96, -4)
	raw, err := r.EvaluateInt()
	require.NoError(t, err)
	reduced, err := r.Simplify().EvaluateInt()
	require.NoError(t, err)
	assert.Equal(t, 0, raw.Cmp(reduced))
}

func TestCmpAndEqual(t *testing.T) {
	assert.True(t, mustNew(t, 2, 4).Equal(mustNew(t, -1, -2)))
	assert.Equal(t, -1, mustNew(t, 1, 3).Cmp(mustNew(t, 1, 2)))
	assert.Equal(t, 1, mustNew(t, 1, -3).Cmp(mustNew(t, 1, -2)))
	assert.Equal(t, -1, mustNew(t, -1, 2).Cmp(mustNew(t, 1, 3)))
}

// TestChainedDivisionIsExact covers 8 / (3 - 8/3), which float64 misses.
func TestChainedDivisionIsExact(t *testing.T) {
	eight, three := rational.FromInt(8), rational.FromInt(3)

	eightThirds, err := eight.Div(three)
	require.NoError(t, err)
	got, err := eight.Div(three.Sub(eightThirds))
	require.NoError(t, err)

	v, err := got.EvaluateInt()
	require.NoError(t, err)
	assert.Equal(t, int64(24), v.Int64())

	f8, f3 := 8.0, 3.0
	assert.NotEqual(t, 24.0, f8/(f3-f8/f3), "float64 rounding is why exact fractions are used")
}
