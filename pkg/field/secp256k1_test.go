package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(t *testing.T, v *big.Int) Fp256k1 {
	t.Helper()
	f, err := NewFp256k1(v)
	require.NoError(t, err)
	return f
}

func TestFp256k1Range(t *testing.T) {
	p := Secp256k1Prime()

	_, err := NewFp256k1(p)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewFp256k1(big.NewInt(-1))
	assert.ErrorIs(t, err, ErrValueOutOfRange)
	_, err = NewFp256k1(nil)
	assert.ErrorIs(t, err, ErrValueOutOfRange)

	top := new(big.Int).Sub(p, big.NewInt(1))
	assert.Equal(t, 0, fp(t, top).BigInt().Cmp(top))
}

func TestFp256k1Arithmetic(t *testing.T) {
	p := Secp256k1Prime()
	one := Fp256k1FromUint(1)
	top := fp(t, new(big.Int).Sub(p, big.NewInt(1)))

	r, err := top.Add(one)
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	r, err = Fp256k1FromUint(0).Sub(one)
	require.NoError(t, err)
	assert.True(t, r.Equal(top))

	r, err = top.Mul(top)
	require.NoError(t, err)
	assert.True(t, r.Equal(one))

	a := fp(t, big.NewInt(123456789))
	cube, err := a.Pow(3)
	require.NoError(t, err)
	want := new(big.Int).Exp(big.NewInt(123456789), big.NewInt(3), p)
	assert.Equal(t, 0, cube.BigInt().Cmp(want))

	inv, err := a.Pow(-1)
	require.NoError(t, err)
	direct, err := a.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.Equal(direct))

	prod, err := a.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.Equal(one))

	q, err := Fp256k1FromUint(7).Div(a)
	require.NoError(t, err)
	back, err := q.Mul(a)
	require.NoError(t, err)
	assert.True(t, back.Equal(Fp256k1FromUint(7)))
}

func TestFp256k1ZeroInverse(t *testing.T) {
	zero := Fp256k1FromUint(0)

	_, err := zero.Inverse()
	assert.ErrorIs(t, err, ErrUndefinedInverse)
	_, err = Fp256k1FromUint(1).Div(zero)
	assert.ErrorIs(t, err, ErrUndefinedInverse)
	_, err = zero.Pow(-2)
	assert.ErrorIs(t, err, ErrUndefinedInverse)

	r, err := zero.Pow(0)
	require.NoError(t, err)
	assert.True(t, r.Equal(Fp256k1FromUint(1)))
}
