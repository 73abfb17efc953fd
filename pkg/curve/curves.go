package curve

import (
	"math/big"

	"github.com/Caqil/ecfield/pkg/field"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// NewFieldCurve creates y^2 = x^3 + a*x + b over the prime field of order p
func NewFieldCurve(name string, a, b, p uint64) (*Curve[field.Element], error) {
	f, err := field.NewField(p)
	if err != nil {
		return nil, err
	}
	fa, err := f.Element(a)
	if err != nil {
		return nil, err
	}
	fb, err := f.Element(b)
	if err != nil {
		return nil, err
	}
	return NewCurve(name, fa, fb), nil
}

// NewFieldPoint builds (x, y) on a prime-field curve from raw residues
func NewFieldPoint(c *Curve[field.Element], x, y uint64) (Point[field.Element], error) {
	if c == nil {
		return Point[field.Element]{}, ErrNilCurve
	}
	f, err := c.A().Field()
	if err != nil {
		return Point[field.Element]{}, err
	}
	fx, err := f.Element(x)
	if err != nil {
		return Point[field.Element]{}, err
	}
	fy, err := f.Element(y)
	if err != nil {
		return Point[field.Element]{}, err
	}
	return c.NewPoint(fx, fy)
}

// NewIntCurve creates y^2 = x^3 + a*x + b over the integers
func NewIntCurve(name string, a, b int64) *Curve[field.Int] {
	return NewCurve(name, field.Int(a), field.Int(b))
}

var (
	secp256k1Curve = NewCurve("secp256k1", field.Fp256k1FromUint(0), field.Fp256k1FromUint(7))

	secp256k1G = Point[field.Fp256k1]{
		curve: secp256k1Curve,
		x:     mustFp256k1(secp256k1.S256().Params().Gx),
		y:     mustFp256k1(secp256k1.S256().Params().Gy),
	}
)

// Secp256k1 returns the curve y^2 = x^3 + 7 over the secp256k1 base field
func Secp256k1() *Curve[field.Fp256k1] {
	return secp256k1Curve
}

// Secp256k1Generator returns the standard base point G
func Secp256k1Generator() Point[field.Fp256k1] {
	return secp256k1G
}

// Secp256k1Order returns the order n of G
func Secp256k1Order() *big.Int {
	return new(big.Int).Set(secp256k1.S256().Params().N)
}

func mustFp256k1(v *big.Int) field.Fp256k1 {
	f, err := field.NewFp256k1(v)
	if err != nil {
		panic(err)
	}
	return f
}
