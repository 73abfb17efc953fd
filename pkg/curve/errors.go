package curve

import "errors"

var (
	// ErrNotOnCurve is returned when coordinates do not satisfy the curve equation
	ErrNotOnCurve = errors.New("point not on curve")

	// ErrMismatchedCurve is returned when combining points of different curves
	ErrMismatchedCurve = errors.New("points belong to different curves")

	// ErrNilCurve is returned when a point has no curve
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("scalar cannot be nil")

	// ErrOrderNotFound is returned when no point order was found within the search limit
	ErrOrderNotFound = errors.New("point order exceeds search limit")

	// ErrBatchLength is returned when points and scalars have different lengths
	ErrBatchLength = errors.New("points and scalars must have the same length")
)
