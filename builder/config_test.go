// SPDX-License-Identifier: MIT
// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvfuse/matrix"
)

// TestDefaults verifies the deterministic defaults of newBuilderConfig.
func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng, "no randomness unless seeded")
	assert.Equal(t, matrix.FormatDense, cfg.format)
	assert.Empty(t, cfg.matrixOpts)
	require.NotNil(t, cfg.valueFn)

	cfg.rng = rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		v := cfg.draw()
		assert.GreaterOrEqual(t, v, DefaultValueLow)
		assert.Less(t, v, DefaultValueHigh)
	}
}

// TestRNGOptions verifies that RNG options configure the rng field correctly,
// including reproducibility with WithSeed.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	exp := rand.New(rand.NewSource(123))
	assert.Same(t, exp, newBuilderConfig(WithRand(exp)).rng)

	a := newBuilderConfig(WithSeed(42)).rng
	b := newBuilderConfig(WithSeed(42)).rng
	assert.Equal(t, a.Int63(), b.Int63())
	assert.Equal(t, a.Int63(), b.Int63())
}

// TestOverrideOrder verifies last-writer-wins across options.
func TestOverrideOrder(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithFormat(matrix.FormatSparse),
		WithFormat(matrix.FormatCompressed),
		WithValueRange(5, 6),
		WithIntegerValues(7, 7),
		WithSeed(1),
	)
	assert.Equal(t, matrix.FormatCompressed, cfg.format)
	assert.Equal(t, 7.0, cfg.draw())

	cfg = newBuilderConfig(
		WithMatrixOptions(matrix.WithSparsityTurnPoint(0.5)),
		WithMatrixOptions(matrix.WithValidateNaNInf()),
	)
	assert.Len(t, cfg.matrixOpts, 2, "matrix options accumulate")
}
