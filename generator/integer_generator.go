package generator

import (
	"fmt"
)

// Generator is the root interface of all value generators.
type Generator interface {
	// NextString generates the next value in the distribution,
	// formatted as a string.
	NextString() string
	// LastString returns the string form of the previous value, for
	// callers that need to re-use it without advancing the generator.
	LastString() string
}

// IntegerGenerator is a generator capable of generating integers and
// strings.
type IntegerGenerator interface {
	Generator
	// NextInt returns the next value as an int. Implementations must
	// call SetLastInt() properly, or the Last* calls won't work.
	NextInt() int64
	LastInt() int64

	Mean() float64
}

// IntegerGeneratorBase carries the last-value bookkeeping shared by
// all IntegerGenerator implementations.
type IntegerGeneratorBase struct {
	lastInt int64
}

func NewIntegerGeneratorBase(last int64) *IntegerGeneratorBase {
	return &IntegerGeneratorBase{
		lastInt: last,
	}
}

// SetLastInt records the last generated value. Implementations must
// use this call from NextInt(), or LastString() and LastInt() won't
// work.
func (self *IntegerGeneratorBase) SetLastInt(value int64) {
	self.lastInt = value
}

// NextString generates the next value of g in the distribution and
// formats it.
func (self *IntegerGeneratorBase) NextString(g IntegerGenerator) string {
	return fmt.Sprintf("%d", g.NextInt())
}

func (self *IntegerGeneratorBase) LastInt() int64 {
	return self.lastInt
}

func (self *IntegerGeneratorBase) LastString() string {
	return fmt.Sprintf("%d", self.LastInt())
}
