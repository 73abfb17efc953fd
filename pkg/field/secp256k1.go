package field

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/pkg/errors"
)

// Secp256k1Prime returns p = 2^256 - 2^32 - 977, the secp256k1 base field prime
func Secp256k1Prime() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().P)
}

// Fp256k1 is an element of the secp256k1 base field. The wrapped value
// is always normalized.
type Fp256k1 struct {
	val secp256k1.FieldVal
}

// NewFp256k1 returns v as a field element, rejecting values outside [0, p)
func NewFp256k1(v *big.Int) (Fp256k1, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(secp256k1.S256().Params().P) >= 0 {
		return Fp256k1{}, errors.Wrapf(ErrValueOutOfRange, "%v not in secp256k1 field", v)
	}
	var f Fp256k1
	f.val.SetByteSlice(v.Bytes())
	f.val.Normalize()
	return f, nil
}

// Fp256k1FromUint returns a small constant as a field element
func Fp256k1FromUint(v uint16) Fp256k1 {
	var f Fp256k1
	f.val.SetInt(v)
	return f
}

// BigInt returns the element as an integer in [0, p)
func (f Fp256k1) BigInt() *big.Int {
	return new(big.Int).SetBytes(f.val.Bytes()[:])
}

// Add returns f + other
func (f Fp256k1) Add(other Fp256k1) (Fp256k1, error) {
	var r Fp256k1
	r.val.Add2(&f.val, &other.val).Normalize()
	return r, nil
}

// Sub returns f - other
func (f Fp256k1) Sub(other Fp256k1) (Fp256k1, error) {
	var r Fp256k1
	r.val.NegateVal(&other.val, 1).Add(&f.val).Normalize()
	return r, nil
}

// Mul returns f * other
func (f Fp256k1) Mul(other Fp256k1) (Fp256k1, error) {
	var r Fp256k1
	r.val.Mul2(&f.val, &other.val).Normalize()
	return r, nil
}

// Inverse returns f^-1
func (f Fp256k1) Inverse() (Fp256k1, error) {
	if f.val.IsZero() {
		return Fp256k1{}, ErrUndefinedInverse
	}
	r := f
	r.val.Inverse().Normalize()
	return r, nil
}

// Div returns f * other^-1
func (f Fp256k1) Div(other Fp256k1) (Fp256k1, error) {
	inv, err := other.Inverse()
	if err != nil {
		return Fp256k1{}, err
	}
	return f.Mul(inv)
}

// Pow returns f^exponent; a negative exponent raises the inverse
func (f Fp256k1) Pow(exponent int64) (Fp256k1, error) {
	base := f
	if exponent < 0 {
		inv, err := f.Inverse()
		if err != nil {
			return Fp256k1{}, err
		}
		base = inv
	}
	magnitude := uint64(exponent)
	if exponent < 0 {
		magnitude = uint64(-(exponent + 1)) + 1
	}

	result := Fp256k1FromUint(1)
	for magnitude > 0 {
		if magnitude&1 == 1 {
			result.val.Mul(&base.val).Normalize()
		}
		base.val.Square().Normalize()
		magnitude >>= 1
	}
	return result, nil
}

// IsZero reports whether f is 0
func (f Fp256k1) IsZero() bool {
	return f.val.IsZero()
}

// Equal reports whether f and other are the same element
func (f Fp256k1) Equal(other Fp256k1) bool {
	return f.val.Equals(&other.val)
}

func (f Fp256k1) String() string {
	return "Fp256k1(" + f.val.String() + ")"
}
