package generator

import (
	"sync"
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source emits raw random words for the generators in this package.
// Implementations must return values uniformly distributed over the
// full uint64 range.
type Source interface {
	Uint64() uint64
}

// LockedSource is a seedable pseudo-random source safe for use from
// multiple goroutines. The underlying generator's state transition is
// serialized with a mutex; the generator itself is a Mersenne Twister,
// so a fixed seed yields a reproducible word sequence.
type LockedSource struct {
	lock sync.Mutex
	src  *prng.MT19937
}

func NewSource(seed uint64) *LockedSource {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &LockedSource{
		src: src,
	}
}

func (self *LockedSource) Uint64() uint64 {
	self.lock.Lock()
	n := self.src.Uint64()
	self.lock.Unlock()
	return n
}

// Seed resets the source to the state derived from seed. Draws made
// after two Seed calls with the same value produce identical sequences.
func (self *LockedSource) Seed(seed uint64) {
	self.lock.Lock()
	self.src.Seed(seed)
	self.lock.Unlock()
}

var random = NewSource(uint64(time.Now().UnixNano()))

// SharedSource returns the process-wide source used by generators that
// have not been given their own source.
func SharedSource() *LockedSource {
	return random
}

// Seed reseeds the shared source.
func Seed(seed uint64) {
	random.Seed(seed)
}

// Float64 converts one word from src into a uniform value in [0.0, 1.0)
// using the top 53 bits, so every result is exactly representable.
func Float64(src Source) float64 {
	return float64(src.Uint64()>>11) / (1 << 53)
}

// NextFloat64 draws a uniform value in [0.0, 1.0) from the shared source.
func NextFloat64() float64 {
	return Float64(random)
}
