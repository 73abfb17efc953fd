package curve

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
)

// Point is either the point at infinity or an affine point (x, y) of its curve.
// Points are values; arithmetic returns new points.
type Point[T Scalar[T]] struct {
	curve    *Curve[T]
	x, y     T
	infinity bool
}

// Curve returns the curve p belongs to
func (p Point[T]) Curve() *Curve[T] {
	return p.curve
}

// IsInfinity reports whether p is the group identity
func (p Point[T]) IsInfinity() bool {
	return p.infinity
}

// Coordinates returns the affine coordinates; ok is false for infinity
func (p Point[T]) Coordinates() (x, y T, ok bool) {
	if p.infinity {
		return x, y, false
	}
	return p.x, p.y, true
}

// Equal reports whether p and other are the same point of the same curve
func (p Point[T]) Equal(other Point[T]) bool {
	if p.curve == nil || !p.curve.Equal(other.curve) {
		return false
	}
	if p.infinity || other.infinity {
		return p.infinity == other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

func (p Point[T]) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%s, %s)", p.x, p.y)
}

func (p Point[T]) sameCurve(other Point[T]) error {
	if p.curve == nil || other.curve == nil {
		return ErrNilCurve
	}
	if !p.curve.Equal(other.curve) {
		return errors.Wrapf(ErrMismatchedCurve, "%s and %s", p.curve.name, other.curve.name)
	}
	return nil
}

// Add returns p + other using the chord-and-tangent law
func (p Point[T]) Add(other Point[T]) (Point[T], error) {
	if err := p.sameCurve(other); err != nil {
		return Point[T]{}, err
	}
	if p.infinity {
		return other, nil
	}
	if other.infinity {
		return p, nil
	}

	// Vertical line: other is -p.
	if p.x.Equal(other.x) && !p.y.Equal(other.y) {
		return p.curve.Infinity(), nil
	}
	if p.y.Equal(other.y) && p.x.Equal(other.x) {
		return p.Double()
	}

	var op ops[T]
	slope := op.div(op.sub(other.y, p.y), op.sub(other.x, p.x))
	if op.err != nil {
		return Point[T]{}, op.err
	}
	return p.chord(slope, other.x)
}

// Double returns p + p
func (p Point[T]) Double() (Point[T], error) {
	if p.curve == nil {
		return Point[T]{}, ErrNilCurve
	}
	if p.infinity {
		return p, nil
	}
	// Vertical tangent.
	if p.y.IsZero() {
		return p.curve.Infinity(), nil
	}

	var op ops[T]
	x2 := op.mul(p.x, p.x)
	num := op.add(op.add(op.add(x2, x2), x2), p.curve.a)
	slope := op.div(num, op.add(p.y, p.y))
	if op.err != nil {
		return Point[T]{}, op.err
	}
	return p.chord(slope, p.x)
}

// chord completes an addition of p and a point with abscissa x2 given the slope
func (p Point[T]) chord(slope, x2 T) (Point[T], error) {
	var op ops[T]
	x3 := op.sub(op.sub(op.mul(slope, slope), p.x), x2)
	y3 := op.sub(op.mul(slope, op.sub(p.x, x3)), p.y)
	if op.err != nil {
		return Point[T]{}, op.err
	}
	return Point[T]{curve: p.curve, x: x3, y: y3}, nil
}

// Negate returns -p = (x, -y)
func (p Point[T]) Negate() (Point[T], error) {
	if p.curve == nil {
		return Point[T]{}, ErrNilCurve
	}
	if p.infinity {
		return p, nil
	}
	var op ops[T]
	zero := op.sub(p.y, p.y)
	negY := op.sub(zero, p.y)
	if op.err != nil {
		return Point[T]{}, op.err
	}
	return Point[T]{curve: p.curve, x: p.x, y: negY}, nil
}

// ScalarMul returns k*p by double-and-add over the bits of k, lowest first
func (p Point[T]) ScalarMul(k uint64) (Point[T], error) {
	if p.curve == nil {
		return Point[T]{}, ErrNilCurve
	}
	result := p.curve.Infinity()
	current := p
	var err error
	for k > 0 {
		if k&1 == 1 {
			if result, err = result.Add(current); err != nil {
				return Point[T]{}, err
			}
		}
		k >>= 1
		if k == 0 {
			break
		}
		if current, err = current.Double(); err != nil {
			return Point[T]{}, err
		}
	}
	return result, nil
}

// ScalarMulBig returns k*p for an arbitrary-size k. A negative k
// multiplies -p by |k|.
func (p Point[T]) ScalarMulBig(k *big.Int) (Point[T], error) {
	if k == nil {
		return Point[T]{}, ErrNilScalar
	}
	if p.curve == nil {
		return Point[T]{}, ErrNilCurve
	}

	current := p
	if k.Sign() < 0 {
		neg, err := p.Negate()
		if err != nil {
			return Point[T]{}, err
		}
		current = neg
	}

	result := p.curve.Infinity()
	var err error
	n := new(big.Int).Abs(k)
	last := n.BitLen() - 1
	for i := 0; i <= last; i++ {
		if n.Bit(i) == 1 {
			if result, err = result.Add(current); err != nil {
				return Point[T]{}, err
			}
		}
		// the doubling past the top bit would be discarded
		if i == last {
			break
		}
		if current, err = current.Double(); err != nil {
			return Point[T]{}, err
		}
	}
	return result, nil
}

// Order returns the smallest n >= 1 with n*p at infinity, searching up to limit
func (p Point[T]) Order(limit uint64) (uint64, error) {
	if p.curve == nil {
		return 0, ErrNilCurve
	}
	current := p
	var err error
	for n := uint64(1); n <= limit; n++ {
		if current.infinity {
			return n, nil
		}
		if current, err = current.Add(p); err != nil {
			return 0, err
		}
	}
	return 0, errors.Wrapf(ErrOrderNotFound, "limit %d", limit)
}
