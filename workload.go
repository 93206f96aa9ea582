package randgen

import (
	"strings"
	"time"

	g "randgen/generator"
)

type MakeWorkloadFunc func() Workload

var (
	Workloads = map[string]MakeWorkloadFunc{
		"SamplingWorkload": func() Workload {
			return NewSamplingWorkload()
		},
	}
)

func NewWorkload(className string) (Workload, error) {
	f, ok := Workloads[className]
	if !ok {
		return nil, g.NewErrorf("unsupported workload: %s", className)
	}
	return f(), nil
}

// Workload represents one sampling scenario. One object of this type
// is instantiated and shared among all client routines.
type Workload interface {
	// Initialize the scenario. Create the generator and any other
	// shared objects here. Called once in the main client routine,
	// before any draws are started.
	Init(p Properties) error

	// Do one draw and report it to the measurements. Called
	// concurrently from multiple client routines; must be routine
	// safe.
	DoDraw(measurements *Measurements) bool

	// Outcomes returns the outcome set of the scenario's distribution.
	Outcomes() []int64

	// Cleanup the scenario. Called once, in the main client routine,
	// after all draws have completed.
	Cleanup() error
}

// SamplingWorkload draws from one weighted distribution described by
// properties: either the inline "outcomes"/"probabilities" lists or a
// "distributionfile".
type SamplingWorkload struct {
	generator *g.WeightedGenerator
}

func NewSamplingWorkload() *SamplingWorkload {
	return &SamplingWorkload{}
}

// MakeGenerator builds the weighted generator described by the given
// properties.
func MakeGenerator(p Properties) (*g.WeightedGenerator, error) {
	if file := p.Get(PropertyDistributionFile); len(file) > 0 {
		return g.NewWeightedGeneratorFromFile(file)
	}
	outcomes := strings.Split(
		p.GetDefault(PropertyOutcomes, PropertyOutcomesDefault), ",")
	probabilities := strings.Split(
		p.GetDefault(PropertyProbabilities, PropertyProbabilitiesDefault), ",")
	return g.ParseWeightedGenerator(outcomes, probabilities)
}

func (self *SamplingWorkload) Init(p Properties) error {
	gen, err := MakeGenerator(p)
	if err != nil {
		return err
	}
	self.generator = gen
	return nil
}

func (self *SamplingWorkload) DoDraw(measurements *Measurements) bool {
	startTime := time.Now()
	next := self.generator.NextInt()
	latency := NanosecondToMicrosecond(time.Since(startTime).Nanoseconds())
	measurements.Measure(next, latency)
	return true
}

func (self *SamplingWorkload) Outcomes() []int64 {
	return self.generator.Outcomes()
}

// Generator exposes the underlying weighted generator, for callers
// that inspect the distribution instead of drawing from it.
func (self *SamplingWorkload) Generator() *g.WeightedGenerator {
	return self.generator
}

func (self *SamplingWorkload) Cleanup() error {
	return nil
}
