package field

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Int is a plain signed integer with checked arithmetic. It lets curves
// over the integers share the point arithmetic used for prime fields.
type Int int64

// Add returns i + other
func (i Int) Add(other Int) (Int, error) {
	if (other > 0 && i > math.MaxInt64-other) || (other < 0 && i < math.MinInt64-other) {
		return 0, errors.Wrapf(ErrOverflow, "%d + %d", i, other)
	}
	return i + other, nil
}

// Sub returns i - other
func (i Int) Sub(other Int) (Int, error) {
	if (other < 0 && i > math.MaxInt64+other) || (other > 0 && i < math.MinInt64+other) {
		return 0, errors.Wrapf(ErrOverflow, "%d - %d", i, other)
	}
	return i - other, nil
}

// Mul returns i * other
func (i Int) Mul(other Int) (Int, error) {
	if i == 0 || other == 0 {
		return 0, nil
	}
	product := i * other
	if product/other != i || (i == -1 && other == math.MinInt64) || (other == -1 && i == math.MinInt64) {
		return 0, errors.Wrapf(ErrOverflow, "%d * %d", i, other)
	}
	return product, nil
}

// Div returns i / other. Only exact quotients are allowed: a remainder
// would make the result leave the integers.
func (i Int) Div(other Int) (Int, error) {
	if other == 0 {
		return 0, ErrUndefinedInverse
	}
	if i == math.MinInt64 && other == -1 {
		return 0, errors.Wrapf(ErrOverflow, "%d / %d", i, other)
	}
	if i%other != 0 {
		return 0, errors.Wrapf(ErrInexactQuotient, "%d / %d", i, other)
	}
	return i / other, nil
}

// Pow returns i^exponent. Negative exponents are defined only for 1 and -1.
func (i Int) Pow(exponent int64) (Int, error) {
	if exponent < 0 {
		switch i {
		case 0:
			return 0, ErrUndefinedInverse
		case 1:
			return 1, nil
		case -1:
			if exponent%2 == 0 {
				return 1, nil
			}
			return -1, nil
		default:
			return 0, errors.Wrapf(ErrInexactQuotient, "%d^%d", i, exponent)
		}
	}

	result, base := Int(1), i
	var err error
	for exponent > 0 {
		if exponent&1 == 1 {
			if result, err = result.Mul(base); err != nil {
				return 0, err
			}
		}
		exponent >>= 1
		if exponent > 0 {
			if base, err = base.Mul(base); err != nil {
				return 0, err
			}
		}
	}
	return result, nil
}

// IsZero reports whether i is 0
func (i Int) IsZero() bool {
	return i == 0
}

// Equal reports whether i and other are the same integer
func (i Int) Equal(other Int) bool {
	return i == other
}

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}
