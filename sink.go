package randgen

import (
	"time"

	g "randgen/generator"
)

// RunResult is the outcome-frequency record of one completed run,
// handed to the configured sink.
type RunResult struct {
	Label     string
	Seed      string
	DrawCount int64
	StartTime time.Time
	EndTime   time.Time
	Outcomes  []int64
	Counts    map[int64]int64
}

// ResultSink receives the result of a run. One sink instance is
// created per run; any argument-based initialization should be done
// by Init().
type ResultSink interface {
	// Set the properties for this sink.
	SetProperties(p Properties)

	// Get the properties for this sink.
	GetProperties() Properties

	// Initialize any state for this sink.
	Init() error

	// Persist one run result.
	Persist(result *RunResult) error

	// Cleanup any state for this sink.
	Cleanup() error
}

type SinkBase struct {
	props Properties
}

func NewSinkBase() *SinkBase {
	return &SinkBase{
		props: NewProperties(),
	}
}

func (self *SinkBase) SetProperties(p Properties) {
	self.props = p
}

func (self *SinkBase) GetProperties() Properties {
	return self.props
}

type MakeSinkFunc func() ResultSink

var (
	Sinks = map[string]MakeSinkFunc{
		"console": func() ResultSink {
			return NewConsoleSink()
		},
	}
)

// RegisterSink adds a sink constructor under the given name, so
// bindings in other packages can hook themselves in.
func RegisterSink(name string, f MakeSinkFunc) {
	Sinks[name] = f
}

func NewSink(className string, props Properties) (ResultSink, error) {
	f, ok := Sinks[className]
	if !ok {
		return nil, g.NewErrorf("unsupported sink: %s", className)
	}
	sink := f()
	sink.SetProperties(props)
	return sink, nil
}

// ConsoleSink prints the per-outcome frequencies to stdout.
type ConsoleSink struct {
	*SinkBase
}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{
		SinkBase: NewSinkBase(),
	}
}

func (self *ConsoleSink) Init() error {
	return nil
}

func (self *ConsoleSink) Persist(result *RunResult) error {
	Output("run %s: %d draws in %v",
		result.Label, result.DrawCount, result.EndTime.Sub(result.StartTime))
	for _, outcome := range result.Outcomes {
		count := result.Counts[outcome]
		Output("%d: %d times (%g)",
			outcome, count, float64(count)/float64(result.DrawCount))
	}
	return nil
}

func (self *ConsoleSink) Cleanup() error {
	return nil
}
