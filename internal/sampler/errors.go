package sampler

import "errors"

var (
	// ErrSourceExhausted is returned when the randomness source can no longer
	// produce values.
	ErrSourceExhausted = errors.New("sampler: randomness source exhausted")

	// ErrInvalidRadius is returned by New for a radius that is not > 0.
	ErrInvalidRadius = errors.New("sampler: radius must be > 0")

	// ErrNilSource is returned by New when no source is supplied.
	ErrNilSource = errors.New("sampler: nil source")
)
