// SPDX-License-Identifier: MIT
package agg_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvfuse/agg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIdentity checks the neutral value of every kind.
func TestIdentity(t *testing.T) {
	assert.Equal(t, 0.0, agg.Identity(agg.Sum))
	assert.Equal(t, 0.0, agg.Identity(agg.SumSq))
	assert.Equal(t, math.MaxFloat64, agg.Identity(agg.Min))
	assert.Equal(t, -math.MaxFloat64, agg.Identity(agg.Max))
}

// TestIdentities returns a fresh vector in configuration order.
func TestIdentities(t *testing.T) {
	kinds := []agg.Kind{agg.Max, agg.Sum, agg.Min}
	c := agg.Identities(kinds)
	require.Len(t, c, 3)
	assert.Equal(t, []float64{-math.MaxFloat64, 0, math.MaxFloat64}, c)

	c[1] = 42
	agg.Reset(kinds, c)
	assert.Equal(t, 0.0, c[1])
}

// TestParseKind covers canonical names, aliases, case and rejection.
func TestParseKind(t *testing.T) {
	cases := map[string]agg.Kind{
		"SUM":     agg.Sum,
		"sum":     agg.Sum,
		" Sum_Sq": agg.SumSq,
		"sumsq":   agg.SumSq,
		"MIN":     agg.Min,
		"max ":    agg.Max,
	}
	for in, want := range cases {
		got, err := agg.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := agg.ParseKind("MEAN")
	assert.ErrorIs(t, err, agg.ErrUnsupportedKind)
}

// TestParseKinds parses a list and fails on an empty element.
func TestParseKinds(t *testing.T) {
	kinds, err := agg.ParseKinds("sum,sum_sq,min,max")
	require.NoError(t, err)
	assert.Equal(t, []agg.Kind{agg.Sum, agg.SumSq, agg.Min, agg.Max}, kinds)
	assert.Equal(t, []string{"SUM", "SUM_SQ", "MIN", "MAX"}, agg.Names(kinds))

	_, err = agg.ParseKinds("sum,,max")
	assert.ErrorIs(t, err, agg.ErrUnsupportedKind)
}

// TestFunctionsRejectsUnsupported ensures validation happens for the whole list.
func TestFunctionsRejectsUnsupported(t *testing.T) {
	_, err := agg.Functions([]agg.Kind{agg.Sum, agg.Kind(0)})
	assert.ErrorIs(t, err, agg.ErrUnsupportedKind)

	_, err = agg.Functions([]agg.Kind{agg.Kind(9)})
	assert.ErrorIs(t, err, agg.ErrUnsupportedKind)
	assert.Equal(t, "Kind(9)", agg.Kind(9).String())

	fns, err := agg.Functions([]agg.Kind{agg.Sum, agg.SumSq, agg.Min, agg.Max})
	require.NoError(t, err)
	assert.True(t, fns[0].Compensated())
	assert.True(t, fns[1].Compensated())
	assert.False(t, fns[2].Compensated())
	assert.False(t, fns[3].Compensated())
	assert.Equal(t, agg.Max, fns[3].Kind())
}

// TestApplyMinMaxIdempotent merges a value with itself.
func TestApplyMinMaxIdempotent(t *testing.T) {
	fns, err := agg.Functions([]agg.Kind{agg.Min, agg.Max})
	require.NoError(t, err)
	for _, v := range []float64{-3.5, 0, 7, math.MaxFloat64, -math.MaxFloat64} {
		assert.Equal(t, v, fns[0].Apply(v, v))
		assert.Equal(t, v, fns[1].Apply(v, v))
	}
	assert.Equal(t, 1.0, fns[0].Apply(1, 4))
	assert.Equal(t, 4.0, fns[1].Apply(1, 4))
}

// TestApplyZeroPartialIsIdentity merges a zero partial into sum-like values.
func TestApplyZeroPartialIsIdentity(t *testing.T) {
	fns, err := agg.Functions([]agg.Kind{agg.Sum, agg.SumSq})
	require.NoError(t, err)
	for _, v := range []float64{1e-300, 3.25, -17, 1e300} {
		assert.Equal(t, v, fns[0].Apply(v, 0))
		assert.Equal(t, v, fns[0].Apply(0, v))
		assert.Equal(t, v, fns[1].Apply(v, 0))
	}
}

// TestKahanBeatsNaiveSummation folds values whose naive sum loses precision.
func TestKahanBeatsNaiveSummation(t *testing.T) {
	var k agg.Kahan
	naive := 0.0
	k.Add(1.0)
	naive += 1.0
	for i := 0; i < 10_000; i++ {
		k.Add(1e-16)
		naive += 1e-16
	}
	want := 1.0 + 1e-12

	assert.InDelta(t, want, k.Sum, 1e-15)
	assert.Equal(t, 1.0, naive, "naive summation drops every tiny addend")
}

// TestKahanInfinity covers the infinity fast path.
func TestKahanInfinity(t *testing.T) {
	k := agg.NewKahan(5)
	k.Add(math.Inf(1))
	assert.True(t, math.IsInf(k.Sum, 1))
	assert.Equal(t, 0.0, k.Correction)

	k.Add(3)
	assert.True(t, math.IsInf(k.Sum, 1), "finite addend keeps the infinity")

	k.Add(math.Inf(-1))
	assert.True(t, math.IsNaN(k.Sum))

	k.Reset()
	assert.Equal(t, agg.Kahan{}, k)
}

// TestKahanAddSq squares before folding.
func TestKahanAddSq(t *testing.T) {
	var k agg.Kahan
	for _, v := range []float64{1, 2, 3, 4} {
		k.AddSq(v)
	}
	assert.Equal(t, 30.0, k.Sum)
}

// TestFoldOrder folds partials in slice order.
func TestFoldOrder(t *testing.T) {
	sum, err := agg.FuncOf(agg.Sum)
	require.NoError(t, err)
	mx, err := agg.FuncOf(agg.Max)
	require.NoError(t, err)

	parts := []float64{1, 2, 3.5}
	assert.Equal(t, 6.5, sum.Fold(agg.Identity(agg.Sum), parts))
	assert.Equal(t, 3.5, mx.Fold(agg.Identity(agg.Max), parts))
	assert.Equal(t, -math.MaxFloat64, mx.Fold(agg.Identity(agg.Max), nil))
	assert.Equal(t, 0.0, sum.Fold(0, nil))
}
