package primecount

import "errors"

var (
	// ErrBelowMinimum is returned when the requested bound is below 10, the
	// smallest bound the slice plan supports.
	ErrBelowMinimum = errors.New("max value must be at least 10")

	// ErrRangeUnsupported is returned when the requested bound exceeds a
	// quadrillion (1e15), the largest bound the slice plan supports.
	ErrRangeUnsupported = errors.New("max value is limited to a quadrillion (1e15)")

	// ErrInvalidWorkers is returned when the worker count is outside 0 to 100.
	ErrInvalidWorkers = errors.New("number of workers must be from 0 to 100")
)
