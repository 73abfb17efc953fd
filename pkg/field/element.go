// Package field provides arithmetic over prime fields.
// Elements are immutable values; every operation returns a new element
// reduced into [0, modulus).
package field

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// Element is an integer residue modulo a prime
type Element struct {
	value   uint64
	modulus uint64
}

// Field is a prime field whose modulus has been validated once
type Field struct {
	modulus uint64
}

// NewField validates modulus and returns the field it defines
func NewField(modulus uint64) (*Field, error) {
	if err := validateModulus(modulus); err != nil {
		return nil, err
	}
	return &Field{modulus: modulus}, nil
}

// Modulus returns the field prime
func (f *Field) Modulus() uint64 {
	return f.modulus
}

// Element returns value as an element of f
func (f *Field) Element(value uint64) (Element, error) {
	if f == nil || f.modulus == 0 {
		return Element{}, ErrUninitialized
	}
	if value >= f.modulus {
		return Element{}, errors.Wrapf(ErrValueOutOfRange, "%d not in 0 to %d", value, f.modulus-1)
	}
	return Element{value: value, modulus: f.modulus}, nil
}

// Zero returns the additive identity
func (f *Field) Zero() Element {
	return Element{value: 0, modulus: f.modulus}
}

// One returns the multiplicative identity
func (f *Field) One() Element {
	return Element{value: 1, modulus: f.modulus}
}

// New creates an element of the field of the given prime modulus
func New(value, modulus uint64) (Element, error) {
	f, err := NewField(modulus)
	if err != nil {
		return Element{}, err
	}
	return f.Element(value)
}

// validateModulus accepts primes only. ProbablyPrime(0) is exact below 2^64.
func validateModulus(modulus uint64) error {
	if modulus < 2 || !new(big.Int).SetUint64(modulus).ProbablyPrime(0) {
		return errors.Wrapf(ErrInvalidModulus, "%d", modulus)
	}
	return nil
}

// Value returns the residue
func (e Element) Value() uint64 {
	return e.value
}

// Modulus returns the field prime
func (e Element) Modulus() uint64 {
	return e.modulus
}

// Field returns the field e belongs to
func (e Element) Field() (*Field, error) {
	if e.modulus == 0 {
		return nil, ErrUninitialized
	}
	return &Field{modulus: e.modulus}, nil
}

// IsZero reports whether e is the additive identity
func (e Element) IsZero() bool {
	return e.value == 0
}

// Equal reports whether e and other have the same value and modulus
func (e Element) Equal(other Element) bool {
	return e.value == other.value && e.modulus == other.modulus
}

func (e Element) String() string {
	return fmt.Sprintf("FieldElement_%d(%d)", e.modulus, e.value)
}

func (e Element) sameField(other Element) error {
	if e.modulus == 0 || other.modulus == 0 {
		return ErrUninitialized
	}
	if e.modulus != other.modulus {
		return errors.Wrapf(ErrMismatchedField, "%d and %d", e.modulus, other.modulus)
	}
	return nil
}

// Add returns e + other
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	return Element{value: addMod(e.value, other.value, e.modulus), modulus: e.modulus}, nil
}

// Sub returns e - other, always in [0, modulus)
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	return Element{value: subMod(e.value, other.value, e.modulus), modulus: e.modulus}, nil
}

// Neg returns -e
func (e Element) Neg() Element {
	return Element{value: subMod(0, e.value, e.modulus), modulus: e.modulus}
}

// Mul returns e * other
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	return Element{value: mulMod(e.value, other.value, e.modulus), modulus: e.modulus}, nil
}

// MulRepeated computes e * other by adding e to itself other.Value() times.
// It runs in O(modulus) and exists to cross-check Mul.
func (e Element) MulRepeated(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	result := Element{value: 0, modulus: e.modulus}
	for count := other.value; count > 0; count-- {
		result.value = addMod(result.value, e.value, e.modulus)
	}
	return result, nil
}

// Pow returns e^exponent. The exponent is reduced modulo (modulus - 1),
// so negative exponents yield powers of the inverse.
func (e Element) Pow(exponent int64) (Element, error) {
	if e.modulus == 0 {
		return Element{}, ErrUninitialized
	}
	if e.value == 0 {
		switch {
		case exponent < 0:
			return Element{}, errors.Wrapf(ErrUndefinedInverse, "0^%d", exponent)
		case exponent == 0:
			return Element{value: 1 % e.modulus, modulus: e.modulus}, nil
		default:
			return e, nil
		}
	}
	order := e.modulus - 1
	return Element{value: powMod(e.value, reduceExponent(exponent, order), e.modulus), modulus: e.modulus}, nil
}

// Inverse returns e^(modulus-2)
func (e Element) Inverse() (Element, error) {
	if e.modulus == 0 {
		return Element{}, ErrUninitialized
	}
	if e.value == 0 {
		return Element{}, ErrUndefinedInverse
	}
	return Element{value: powMod(e.value, e.modulus-2, e.modulus), modulus: e.modulus}, nil
}

// Div returns e * other^-1
func (e Element) Div(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	inv, err := other.Inverse()
	if err != nil {
		return Element{}, err
	}
	return e.Mul(inv)
}

// reduceExponent maps exponent into [0, order) using a Euclidean remainder.
// The negation goes through exponent+1 so math.MinInt64 does not overflow.
func reduceExponent(exponent int64, order uint64) uint64 {
	if order == 0 {
		return 0
	}
	if exponent >= 0 {
		return uint64(exponent) % order
	}
	magnitude := uint64(-(exponent + 1)) + 1
	r := magnitude % order
	if r == 0 {
		return 0
	}
	return order - r
}

func addMod(a, b, m uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 || sum >= m {
		sum -= m
	}
	return sum
}

func subMod(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return m - (b - a)
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

func powMod(base, exp, m uint64) uint64 {
	result := 1 % m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}
