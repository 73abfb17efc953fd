package field

import "errors"

var (
	// ErrValueOutOfRange is returned when a value is not in [0, modulus)
	ErrValueOutOfRange = errors.New("value not in field range")

	// ErrInvalidModulus is returned when the modulus is not a prime >= 2
	ErrInvalidModulus = errors.New("modulus must be a prime")

	// ErrMismatchedField is returned when combining elements of different fields
	ErrMismatchedField = errors.New("elements belong to different fields")

	// ErrUninitialized is returned when operating on a zero-value element
	ErrUninitialized = errors.New("element has no field")

	// ErrUndefinedInverse is returned when inverting zero
	ErrUndefinedInverse = errors.New("inverse of zero is undefined")

	// ErrOverflow is returned when an intermediate value does not fit the integer width
	ErrOverflow = errors.New("integer overflow")

	// ErrInexactQuotient is returned when integer division leaves a remainder
	ErrInexactQuotient = errors.New("quotient is not an integer")
)
