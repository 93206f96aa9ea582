package generator

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var one = decimal.New(1, 0)

// WeightedGenerator generates integers from a fixed outcome set such
// that, over many draws, each outcome occurs with its assigned
// probability. Construction validates the (outcomes, probabilities)
// pair and precomputes a cumulative-probability table; a draw maps one
// uniform roll in [0.0, 1.0) to an outcome index with an upper-bound
// binary search over that table.
//
// The probabilities and the cumulative table are held as exact base-10
// decimals. Accumulating binary floating point does not reliably sum
// decimal fractions to 1.0 (0.1 added ten times is not 1.0), which
// would reject valid input and misplace bucket boundaries. Floating
// point is used only for the incoming roll and the lookup comparison.
//
// A WeightedGenerator is immutable after construction, except for the
// injectable random source and the last-value bookkeeping. The
// cumulative table is read-only after construction, so concurrent
// NextInt() calls only contend on the source.
type WeightedGenerator struct {
	*IntegerGeneratorBase
	outcomes        []int64
	probabilities   []decimal.Decimal
	cumulative      []decimal.Decimal
	cumulativeRolls []float64
	source          Source
}

// NewWeightedGenerator validates outcomes against probabilities and
// builds the generator. Validation order is fixed: length mismatch
// first, then each probability in input order (well-formedness before
// range), then the sum-to-one check against the last entry of the
// cumulative table. Duplicate outcomes are permitted; they just stack
// additional probability mass on an already-present value.
func NewWeightedGenerator(outcomes []int64, probabilities []float64) (*WeightedGenerator, error) {
	if len(outcomes) != len(probabilities) {
		return nil, ErrLengthMismatch
	}
	decimals := make([]decimal.Decimal, 0, len(probabilities))
	for _, p := range probabilities {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrInvalidProbabilityType
		}
		if p < 0.0 || p > 1.0 {
			return nil, ErrInvalidProbability
		}
		// NewFromFloat keeps the shortest decimal representation of p,
		// the same value the probability was written as.
		decimals = append(decimals, decimal.NewFromFloat(p))
	}
	return newWeightedGenerator(outcomes, decimals)
}

// ParseWeightedGenerator builds a generator from textual outcome and
// probability tokens, as found in property values and distribution
// files. This is the boundary where a non-integral outcome or a
// non-numeric probability surfaces as a type error.
func ParseWeightedGenerator(outcomes []string, probabilities []string) (*WeightedGenerator, error) {
	if len(outcomes) != len(probabilities) {
		return nil, ErrLengthMismatch
	}
	decimals := make([]decimal.Decimal, 0, len(probabilities))
	for _, token := range probabilities {
		d, err := decimal.NewFromString(strings.TrimSpace(token))
		if err != nil {
			return nil, ErrInvalidProbabilityType
		}
		if d.IsNegative() || d.GreaterThan(one) {
			return nil, ErrInvalidProbability
		}
		decimals = append(decimals, d)
	}
	values := make([]int64, 0, len(outcomes))
	for _, token := range outcomes {
		v, err := strconv.ParseInt(strings.TrimSpace(token), 0, 64)
		if err != nil {
			return nil, ErrInvalidOutcomeType
		}
		values = append(values, v)
	}
	return newWeightedGenerator(values, decimals)
}

// NewWeightedGeneratorFromFile loads a distribution file where each
// line holds "outcome<TAB>probability".
func NewWeightedGeneratorFromFile(file string) (*WeightedGenerator, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var outcomes, probabilities []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			return nil, NewErrorf("invalid format for distribution file: %s", file)
		}
		outcomes = append(outcomes, parts[0])
		probabilities = append(probabilities, parts[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ParseWeightedGenerator(outcomes, probabilities)
}

func newWeightedGenerator(outcomes []int64, probabilities []decimal.Decimal) (*WeightedGenerator, error) {
	cumulative := make([]decimal.Decimal, 0, len(probabilities))
	rolls := make([]float64, 0, len(probabilities))
	sum := decimal.Zero
	for _, p := range probabilities {
		sum = sum.Add(p)
		cumulative = append(cumulative, sum)
		rolls = append(rolls, sum.InexactFloat64())
	}
	// The authoritative sum-to-one check: the table's last entry must
	// be exactly 1. This also rejects empty input.
	if !sum.Equal(one) {
		return nil, ErrProbabilitySum
	}
	return &WeightedGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		outcomes:             append([]int64(nil), outcomes...),
		probabilities:        probabilities,
		cumulative:           cumulative,
		cumulativeRolls:      rolls,
		source:               random,
	}, nil
}

// LocateIndex returns the smallest index whose cumulative value
// strictly exceeds roll, for roll in [0.0, 1.0). A roll equal to a
// bucket boundary lands in the next bucket, so zero-probability
// buckets are skipped and roll 0.0 resolves to the first bucket with
// mass. The table is monotonically non-decreasing with last entry 1.0,
// which makes the search total; an index past the end is an invariant
// violation, not an error the caller can handle.
func LocateIndex(cumulative []float64, roll float64) int {
	index := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > roll
	})
	if index >= len(cumulative) {
		panic(fmt.Sprintf("roll %v past the end of the cumulative table %v", roll, cumulative))
	}
	return index
}

// Locate runs the cumulative lookup against this generator's table.
func (self *WeightedGenerator) Locate(roll float64) int {
	return LocateIndex(self.cumulativeRolls, roll)
}

// NextInt draws one uniform roll from the generator's source and
// returns the outcome whose probability range the roll falls into.
func (self *WeightedGenerator) NextInt() int64 {
	roll := Float64(self.source)
	next := self.outcomes[self.Locate(roll)]
	self.SetLastInt(next)
	return next
}

func (self *WeightedGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

// Mean returns the probability-weighted mean of the outcomes.
func (self *WeightedGenerator) Mean() float64 {
	var mean float64
	for i, outcome := range self.outcomes {
		mean += float64(outcome) * self.probabilities[i].InexactFloat64()
	}
	return mean
}

// SetSource replaces the random source backing NextInt(). The default
// is the package's shared source.
func (self *WeightedGenerator) SetSource(source Source) {
	self.source = source
}

// Outcomes returns a copy of the outcome set.
func (self *WeightedGenerator) Outcomes() []int64 {
	return append([]int64(nil), self.outcomes...)
}

// Probabilities returns a copy of the validated probabilities.
func (self *WeightedGenerator) Probabilities() []decimal.Decimal {
	return append([]decimal.Decimal(nil), self.probabilities...)
}

// CumulativeTable returns a copy of the cumulative-probability table.
func (self *WeightedGenerator) CumulativeTable() []decimal.Decimal {
	return append([]decimal.Decimal(nil), self.cumulative...)
}
