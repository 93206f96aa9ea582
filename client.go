package randgen

import (
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	g "randgen/generator"
)

type Client interface {
	Main()
}

// Runner executes one sampling run: it seeds the shared source when a
// seed property is given, fans the draws out over the configured
// number of goroutines, then exports the measurements and hands the
// result to the configured sink.
type Runner struct {
	args *Arguments
}

func NewRunner(args *Arguments) *Runner {
	return &Runner{
		args: args,
	}
}

func (self *Runner) Main() {
	props := self.args.Properties
	SetMeasurementProperties(props)

	workload, err := NewWorkload(
		props.GetDefault(PropertyWorkload, PropertyWorkloadDefault))
	if err != nil {
		ExitOnError("fail to create workload, error: %s", err)
	}
	if err = workload.Init(props); err != nil {
		ExitOnError("invalid distribution, error: %s", err)
	}

	seed := props.Get(PropertySeed)
	if len(seed) > 0 {
		s, err := strconv.ParseUint(seed, 0, 64)
		if err != nil {
			ExitOnError("invalid seed: %s", seed)
		}
		g.Seed(s)
	}
	propStr := props.GetDefault(PropertyDrawCount, PropertyDrawCountDefault)
	drawCount, err := strconv.ParseInt(propStr, 0, 64)
	if err != nil || drawCount <= 0 {
		ExitOnError("invalid %s: %s", PropertyDrawCount, propStr)
	}
	propStr = props.GetDefault(PropertyThreadCount, PropertyThreadCountDefault)
	threadCount, err := strconv.ParseInt(propStr, 0, 64)
	if err != nil || threadCount <= 0 {
		ExitOnError("invalid %s: %s", PropertyThreadCount, propStr)
	}

	measurements := GetMeasurements()
	stopStatus := self.startStatusRoutine(measurements)

	startTime := time.Now()
	var group sync.WaitGroup
	share := drawCount / threadCount
	remainder := drawCount % threadCount
	for i := int64(0); i < threadCount; i++ {
		count := share
		if i == 0 {
			count += remainder
		}
		group.Add(1)
		go func(count int64) {
			defer group.Done()
			for j := int64(0); j < count; j++ {
				if !workload.DoDraw(measurements) {
					break
				}
			}
		}(count)
	}
	group.Wait()
	endTime := time.Now()
	close(stopStatus)

	if err = workload.Cleanup(); err != nil {
		Errorf("fail to cleanup workload, error: %s", err)
	}
	if err = self.export(measurements); err != nil {
		ExitOnError("fail to export measurements, error: %s", err)
	}

	result := &RunResult{
		Label:     props.GetDefault(PropertyLabel, PropertyLabelDefault),
		Seed:      seed,
		DrawCount: drawCount,
		StartTime: startTime,
		EndTime:   endTime,
		Outcomes:  workload.Outcomes(),
		Counts:    measurements.Frequency().Counts(),
	}
	self.persist(result)
}

func (self *Runner) startStatusRoutine(measurements *Measurements) chan struct{} {
	stop := make(chan struct{})
	if _, ok := self.args.Options["s"]; !ok {
		return stop
	}
	propStr := self.args.Properties.GetDefault(
		PropertyStatusInterval, PropertyStatusIntervalDefault)
	interval, err := strconv.ParseInt(propStr, 0, 64)
	if err != nil || interval <= 0 {
		ExitOnError("invalid %s: %s", PropertyStatusInterval, propStr)
	}
	go func() {
		ticker := time.NewTicker(time.Duration(SecondToNanosecond(interval)))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				EPrintf("%s", measurements.GetSummary())
			case <-stop:
				return
			}
		}
	}()
	return stop
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func (self *Runner) export(measurements *Measurements) error {
	props := self.args.Properties
	var w io.WriteCloser
	if file := props.Get(PropertyExportFile); len(file) > 0 {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		w = f
	} else {
		w = nopWriteCloser{os.Stdout}
	}
	exporter, err := NewMeasurementExporter(
		props.GetDefault(PropertyExporter, PropertyExporterDefault), w)
	if err != nil {
		w.Close()
		return err
	}
	err = measurements.ExportMeasurements(exporter)
	err2 := exporter.Close()
	if err != nil {
		return err
	}
	return err2
}

func (self *Runner) persist(result *RunResult) {
	props := self.args.Properties
	sink, err := NewSink(props.GetDefault(PropertySink, PropertySinkDefault), props)
	if err != nil {
		ExitOnError("fail to create sink, error: %s", err)
	}
	if err = sink.Init(); err != nil {
		ExitOnError("fail to init sink, error: %s", err)
	}
	if err = sink.Persist(result); err != nil {
		Errorf("fail to persist result, error: %s", err)
	}
	if err = sink.Cleanup(); err != nil {
		Errorf("fail to cleanup sink, error: %s", err)
	}
}

// Checker constructs the configured distribution and prints its exact
// cumulative table, or the validation error that rejects it.
type Checker struct {
	args *Arguments
}

func NewChecker(args *Arguments) *Checker {
	return &Checker{
		args: args,
	}
}

func (self *Checker) Main() {
	gen, err := MakeGenerator(self.args.Properties)
	if err != nil {
		ExitOnError("invalid distribution: %s", err)
	}
	outcomes := gen.Outcomes()
	probabilities := gen.Probabilities()
	cumulative := gen.CumulativeTable()
	Output("outcome\tprobability\tcumulative")
	for i, outcome := range outcomes {
		Output("%d\t%s\t%s", outcome,
			probabilities[i].String(), cumulative[i].String())
	}
	Output("mean: %g", gen.Mean())
}
