// Package rand provides random field elements and scalars
package rand

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"math/big"

	"github.com/Caqil/ecfield/pkg/field"
	"golang.org/x/crypto/hkdf"
)

// Reader is the default cryptographically secure random number generator
var Reader io.Reader = rand.Reader

// GenerateRandomBytes generates n random bytes from r (Reader when nil)
func GenerateRandomBytes(r io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if r == nil {
		r = Reader
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}

	return bytes, nil
}

// GenerateRandomScalar generates a uniform scalar in range [1, max)
func GenerateRandomScalar(r io.Reader, max *big.Int) (*big.Int, error) {
	if max == nil {
		return nil, ErrNilMax
	}
	if max.Cmp(big.NewInt(1)) <= 0 {
		return nil, ErrInvalidMax
	}
	if r == nil {
		r = Reader
	}

	// Rejecting zero keeps the distribution uniform over [1, max)
	for {
		value, err := rand.Int(r, max)
		if err != nil {
			return nil, err
		}
		if value.Sign() != 0 {
			return value, nil
		}
	}
}

// RandomElement returns a uniform element of f
func RandomElement(r io.Reader, f *field.Field) (field.Element, error) {
	if f == nil {
		return field.Element{}, ErrNilField
	}
	if r == nil {
		r = Reader
	}

	v, err := rand.Int(r, new(big.Int).SetUint64(f.Modulus()))
	if err != nil {
		return field.Element{}, err
	}
	return f.Element(v.Uint64())
}

// RandomNonZeroElement returns a uniform element of f other than zero
func RandomNonZeroElement(r io.Reader, f *field.Field) (field.Element, error) {
	if f == nil {
		return field.Element{}, ErrNilField
	}

	v, err := GenerateRandomScalar(r, new(big.Int).SetUint64(f.Modulus()))
	if err != nil {
		return field.Element{}, err
	}
	return f.Element(v.Uint64())
}

// NewDeterministicReader expands seed into a reproducible byte stream with
// HKDF-SHA256. The same seed and info always yield the same stream,
// which ends after 8160 bytes.
func NewDeterministicReader(seed, info []byte) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}
	return hkdf.New(sha256.New, seed, nil, info), nil
}
