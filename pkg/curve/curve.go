// Package curve implements the point group of a short Weierstrass curve
// y^2 = x^3 + A*x + B over any scalar type that provides field arithmetic.
package curve

import (
	"fmt"

	"github.com/pkg/errors"
)

// Scalar is the arithmetic a coordinate type must provide. Both prime
// field elements and plain integers satisfy it.
type Scalar[T any] interface {
	Add(T) (T, error)
	Sub(T) (T, error)
	Mul(T) (T, error)
	Div(T) (T, error)
	Pow(exponent int64) (T, error)
	Equal(T) bool
	IsZero() bool
	String() string
}

// Curve describes y^2 = x^3 + A*x + B. It is immutable once created.
type Curve[T Scalar[T]] struct {
	name string
	a    T
	b    T
}

// NewCurve creates a curve descriptor from its coefficients
func NewCurve[T Scalar[T]](name string, a, b T) *Curve[T] {
	return &Curve[T]{name: name, a: a, b: b}
}

// Name returns the curve name
func (c *Curve[T]) Name() string {
	return c.name
}

// A returns the linear coefficient
func (c *Curve[T]) A() T {
	return c.a
}

// B returns the constant coefficient
func (c *Curve[T]) B() T {
	return c.b
}

// Equal reports whether c and other have the same coefficients
func (c *Curve[T]) Equal(other *Curve[T]) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c == other || (c.a.Equal(other.a) && c.b.Equal(other.b))
}

func (c *Curve[T]) String() string {
	return fmt.Sprintf("%s: y^2 = x^3 + %s*x + %s", c.name, c.a, c.b)
}

// Contains evaluates the curve equation at (x, y). The error is non-nil
// only when the scalar arithmetic itself fails.
func (c *Curve[T]) Contains(x, y T) (bool, error) {
	var op ops[T]
	lhs := op.mul(y, y)
	x3 := op.mul(op.mul(x, x), x)
	rhs := op.add(op.add(x3, op.mul(c.a, x)), c.b)
	if op.err != nil {
		return false, op.err
	}
	return lhs.Equal(rhs), nil
}

// Infinity returns the identity of the group
func (c *Curve[T]) Infinity() Point[T] {
	return Point[T]{curve: c, infinity: true}
}

// NewPoint returns (x, y) as a point of c, or ErrNotOnCurve
func (c *Curve[T]) NewPoint(x, y T) (Point[T], error) {
	ok, err := c.Contains(x, y)
	if err != nil {
		return Point[T]{}, errors.Wrapf(err, "evaluating curve at (%s, %s)", x, y)
	}
	if !ok {
		return Point[T]{}, errors.Wrapf(ErrNotOnCurve, "(%s, %s) on %s", x, y, c.name)
	}
	return Point[T]{curve: c, x: x, y: y}, nil
}

// ops chains scalar operations and keeps the first error
type ops[T Scalar[T]] struct {
	err error
}

func (o *ops[T]) add(a, b T) T {
	if o.err != nil {
		return a
	}
	r, err := a.Add(b)
	o.err = err
	return r
}

func (o *ops[T]) sub(a, b T) T {
	if o.err != nil {
		return a
	}
	r, err := a.Sub(b)
	o.err = err
	return r
}

func (o *ops[T]) mul(a, b T) T {
	if o.err != nil {
		return a
	}
	r, err := a.Mul(b)
	o.err = err
	return r
}

func (o *ops[T]) div(a, b T) T {
	if o.err != nil {
		return a
	}
	r, err := a.Div(b)
	o.err = err
	return r
}
