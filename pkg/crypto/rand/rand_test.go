package rand

import (
	"bytes"
	"io"
	"math/big"
	"testing"

	"github.com/Caqil/ecfield/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicReaderIsReproducible(t *testing.T) {
	r1, err := NewDeterministicReader([]byte("seed"), []byte("info"))
	require.NoError(t, err)
	r2, err := NewDeterministicReader([]byte("seed"), []byte("info"))
	require.NoError(t, err)
	r3, err := NewDeterministicReader([]byte("seed"), []byte("other"))
	require.NoError(t, err)

	b1, err := GenerateRandomBytes(r1, 64)
	require.NoError(t, err)
	b2, err := GenerateRandomBytes(r2, 64)
	require.NoError(t, err)
	b3, err := GenerateRandomBytes(r3, 64)
	require.NoError(t, err)

	assert.Equal(t, b1, b2)
	assert.NotEqual(t, b1, b3)

	_, err = NewDeterministicReader(nil, nil)
	assert.ErrorIs(t, err, ErrEmptySeed)
}

func TestRandomElement(t *testing.T) {
	f, err := field.NewField(31)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		e, err := RandomElement(nil, f)
		require.NoError(t, err)
		assert.Less(t, e.Value(), uint64(31))

		nz, err := RandomNonZeroElement(nil, f)
		require.NoError(t, err)
		assert.False(t, nz.IsZero())
	}

	_, err = RandomElement(nil, nil)
	assert.ErrorIs(t, err, ErrNilField)
	_, err = RandomNonZeroElement(nil, nil)
	assert.ErrorIs(t, err, ErrNilField)
}

func TestGenerateRandomScalar(t *testing.T) {
	_, err := GenerateRandomScalar(nil, nil)
	assert.ErrorIs(t, err, ErrNilMax)
	_, err = GenerateRandomScalar(nil, big.NewInt(1))
	assert.ErrorIs(t, err, ErrInvalidMax)

	v, err := GenerateRandomScalar(nil, big.NewInt(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Int64())
}

func TestGenerateRandomBytes(t *testing.T) {
	_, err := GenerateRandomBytes(nil, 0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = GenerateRandomBytes(bytes.NewReader([]byte{1, 2}), 4)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
