package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArithmetic(t *testing.T) {
	r, err := Int(7).Add(-10)
	require.NoError(t, err)
	assert.Equal(t, Int(-3), r)

	r, err = Int(7).Sub(10)
	require.NoError(t, err)
	assert.Equal(t, Int(-3), r)

	r, err = Int(-6).Mul(7)
	require.NoError(t, err)
	assert.Equal(t, Int(-42), r)

	r, err = Int(-6).Div(-3)
	require.NoError(t, err)
	assert.Equal(t, Int(2), r)

	r, err = Int(-3).Pow(3)
	require.NoError(t, err)
	assert.Equal(t, Int(-27), r)

	r, err = Int(5).Pow(0)
	require.NoError(t, err)
	assert.Equal(t, Int(1), r)

	assert.Equal(t, "-27", Int(-27).String())
	assert.True(t, Int(0).IsZero())
}

func TestIntDivIsExact(t *testing.T) {
	_, err := Int(-6).Div(4)
	assert.ErrorIs(t, err, ErrInexactQuotient)

	_, err = Int(1).Div(0)
	assert.ErrorIs(t, err, ErrUndefinedInverse)
}

func TestIntNegativePow(t *testing.T) {
	r, err := Int(-1).Pow(-3)
	require.NoError(t, err)
	assert.Equal(t, Int(-1), r)

	r, err = Int(1).Pow(-8)
	require.NoError(t, err)
	assert.Equal(t, Int(1), r)

	_, err = Int(0).Pow(-1)
	assert.ErrorIs(t, err, ErrUndefinedInverse)

	_, err = Int(2).Pow(-1)
	assert.ErrorIs(t, err, ErrInexactQuotient)
}

func TestIntOverflow(t *testing.T) {
	cases := []struct {
		name string
		op   func() (Int, error)
	}{
		{"add", func() (Int, error) { return Int(math.MaxInt64).Add(1) }},
		{"add negative", func() (Int, error) { return Int(math.MinInt64).Add(-1) }},
		{"sub", func() (Int, error) { return Int(math.MinInt64).Sub(1) }},
		{"sub negative", func() (Int, error) { return Int(math.MaxInt64).Sub(-1) }},
		{"mul", func() (Int, error) { return Int(math.MaxInt64 / 2).Mul(3) }},
		{"mul min", func() (Int, error) { return Int(math.MinInt64).Mul(-1) }},
		{"div min", func() (Int, error) { return Int(math.MinInt64).Div(-1) }},
		{"pow", func() (Int, error) { return Int(10).Pow(19) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.op()
			assert.ErrorIs(t, err, ErrOverflow)
		})
	}

	r, err := Int(10).Pow(18)
	require.NoError(t, err)
	assert.Equal(t, Int(1_000_000_000_000_000_000), r)
}
