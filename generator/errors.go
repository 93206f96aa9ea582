package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch is returned when the outcome and probability
	// sequences have different lengths.
	ErrLengthMismatch = errors.New("length of outcomes and probabilities must be equal")
	// ErrInvalidOutcomeType is returned when an outcome is not
	// representable as an integer.
	ErrInvalidOutcomeType = errors.New("outcomes must be integers")
	// ErrInvalidProbabilityType is returned when a probability is not a
	// well-formed real number.
	ErrInvalidProbabilityType = errors.New("probabilities must be real numbers")
	// ErrInvalidProbability is returned when a probability lies outside
	// the closed range [0.0, 1.0].
	ErrInvalidProbability = errors.New("probabilities must be within [0.0, 1.0]")
	// ErrProbabilitySum is returned when the probabilities do not sum
	// to exactly 1 under decimal arithmetic.
	ErrProbabilitySum = errors.New("probabilities must sum to 1")
)

func NewErrorf(format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf(format, args...))
}
