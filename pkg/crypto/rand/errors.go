package rand

import "errors"

var (
	// ErrInvalidLength is returned when requested length is invalid
	ErrInvalidLength = errors.New("invalid length: must be positive")

	// ErrNilMax is returned when max parameter is nil
	ErrNilMax = errors.New("max cannot be nil")

	// ErrInvalidMax is returned when max leaves no value in [1, max)
	ErrInvalidMax = errors.New("max must be greater than 1")

	// ErrNilField is returned when a nil field is provided
	ErrNilField = errors.New("field cannot be nil")

	// ErrEmptySeed is returned when a deterministic reader has no seed
	ErrEmptySeed = errors.New("seed cannot be empty")
)
