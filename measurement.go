package randgen

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/hhkbp2/go-strftime"
	g "randgen/generator"
)

// Used to export the collected measurements into a useful format, for
// example human readable text or machine readable JSON.
type MeasurementExporter interface {
	// Write a measurement to the exported format. v should be int64 or float64
	Write(metric string, measurement string, v interface{}) error
	io.Closer
}

type MakeMeasurementExporterFunc func(w io.WriteCloser) MeasurementExporter

var (
	MeasurementExporters map[string]MakeMeasurementExporterFunc
)

func init() {
	MeasurementExporters = map[string]MakeMeasurementExporterFunc{
		"TextMeasurementExporter": func(w io.WriteCloser) MeasurementExporter {
			return NewTextMeasurementExporter(w)
		},
		"JSONArrayMeasurementExporter": func(w io.WriteCloser) MeasurementExporter {
			return NewJSONArrayMeasurementExporter(w)
		},
	}
}

func NewMeasurementExporter(className string, w io.WriteCloser) (MeasurementExporter, error) {
	f, ok := MeasurementExporters[className]
	if !ok {
		return nil, g.NewErrorf("unsupported measurement exporter: %s", className)
	}
	return f(w), nil
}

// Write human readable text.
type TextMeasurementExporter struct {
	io.WriteCloser
	buf *bufio.Writer
}

func NewTextMeasurementExporter(w io.WriteCloser) *TextMeasurementExporter {
	return &TextMeasurementExporter{
		WriteCloser: w,
		buf:         bufio.NewWriter(w),
	}
}

func (self *TextMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	_, err := self.buf.WriteString(fmt.Sprintf("[%s], %s, %v\n", metric, measurement, v))
	return err
}

func (self *TextMeasurementExporter) Close() error {
	err := self.buf.Flush()
	err2 := self.WriteCloser.Close()
	if err != nil {
		return err
	}
	return err2
}

type innerJSONMeasurement struct {
	Metric      string      `json:"metric"`
	Measurement string      `json:"measurement"`
	Value       interface{} `json:"value"`
}

// Export measurements into a machine readable JSON array of
// measurement objects.
type JSONArrayMeasurementExporter struct {
	io.WriteCloser
	buf        *bufio.Writer
	afterFirst bool
}

func NewJSONArrayMeasurementExporter(w io.WriteCloser) *JSONArrayMeasurementExporter {
	object := &JSONArrayMeasurementExporter{
		WriteCloser: w,
		buf:         bufio.NewWriter(w),
		afterFirst:  false,
	}
	object.buf.WriteString("[")
	return object
}

func (self *JSONArrayMeasurementExporter) Write(metric string, measurement string, v interface{}) error {
	b, err := json.Marshal(&innerJSONMeasurement{
		Metric:      metric,
		Measurement: measurement,
		Value:       v,
	})
	if err != nil {
		return err
	}
	if self.afterFirst {
		if _, err = self.buf.WriteString(","); err != nil {
			return err
		}
	} else {
		self.afterFirst = true
	}
	_, err = self.buf.Write(b)
	return err
}

func (self *JSONArrayMeasurementExporter) Close() error {
	_, err := self.buf.WriteString("]")
	if err == nil {
		err = self.buf.Flush()
	}
	err2 := self.WriteCloser.Close()
	if err != nil {
		return err
	}
	return err2
}

func try(err error) {
	if err != nil {
		panic(fmt.Errorf("Error: %s", err.Error()))
	}
}

func catch(err *error) {
	if p := recover(); p != nil {
		*err = p.(error)
	}
}

// FrequencyMeasurement counts how often each outcome has been drawn.
type FrequencyMeasurement struct {
	name   string
	lock   *sync.Mutex
	counts map[int64]int64
	total  int64
}

func NewFrequencyMeasurement(name string) *FrequencyMeasurement {
	return &FrequencyMeasurement{
		name:   name,
		lock:   &sync.Mutex{},
		counts: make(map[int64]int64),
	}
}

func (self *FrequencyMeasurement) GetName() string {
	return self.name
}

func (self *FrequencyMeasurement) Measure(outcome int64) {
	self.lock.Lock()
	defer self.lock.Unlock()

	self.counts[outcome]++
	self.total++
}

// Counts returns a copy of the per-outcome draw counts.
func (self *FrequencyMeasurement) Counts() map[int64]int64 {
	self.lock.Lock()
	defer self.lock.Unlock()

	counts := make(map[int64]int64, len(self.counts))
	for outcome, count := range self.counts {
		counts[outcome] = count
	}
	return counts
}

func (self *FrequencyMeasurement) Total() int64 {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.total
}

func (self *FrequencyMeasurement) GetSummary() string {
	self.lock.Lock()
	defer self.lock.Unlock()
	return fmt.Sprintf("[%s: Draws=%d, Distinct=%d]",
		self.name, self.total, len(self.counts))
}

func (self *FrequencyMeasurement) ExportMeasurements(exporter MeasurementExporter) (err error) {
	defer catch(&err)
	self.lock.Lock()
	defer self.lock.Unlock()

	try(exporter.Write(self.name, "Draws", self.total))
	outcomes := make([]int64, 0, len(self.counts))
	for outcome := range self.counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Slice(outcomes, func(i, j int) bool {
		return outcomes[i] < outcomes[j]
	})
	for _, outcome := range outcomes {
		count := self.counts[outcome]
		try(exporter.Write(self.name, fmt.Sprintf("Count(%d)", outcome), count))
		try(exporter.Write(self.name, fmt.Sprintf("Proportion(%d)", outcome),
			float64(count)/float64(self.total)))
	}
	return
}

// Helper function to parse the given percentile value string.
func parsePercentileValues(prop, defaultValue string) []int64 {
	parts := strings.Split(prop, ",")
	ret := make([]int64, 0, len(parts))
	for _, p := range parts {
		i, err := strconv.ParseInt(strings.TrimSpace(p), 0, 64)
		if err != nil {
			return parsePercentileValues(defaultValue, defaultValue)
		}
		ret = append(ret, i)
	}
	return ret
}

var (
	suffixes = []string{"th", "st", "nd", "rd", "th", "th", "th", "th", "th", "th"}
)

func ordinal(p int64) string {
	switch p % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", p)
	default:
		return fmt.Sprintf("%d%s", p, suffixes[p%10])
	}
}

// LatencyMeasurement maintains a HdrHistogram of per-draw latency.
type LatencyMeasurement struct {
	name        string
	lock        *sync.Mutex
	histogram   *hdrhistogram.Histogram
	percentiles []int64
}

func NewLatencyMeasurement(name string, props Properties) (*LatencyMeasurement, error) {
	prop := props.GetDefault(PropertyPercentiles, PropertyPercentilesDefault)
	percentiles := parsePercentileValues(prop, PropertyPercentilesDefault)
	prop = props.GetDefault(PropertyHdrHistogramMax, PropertyHdrHistogramMaxDefault)
	max, err := strconv.ParseInt(prop, 0, 64)
	if err != nil {
		return nil, err
	}
	prop = props.GetDefault(PropertyHdrHistogramSig, PropertyHdrHistogramSigDefault)
	sig, err := strconv.ParseInt(prop, 0, 64)
	if err != nil {
		return nil, err
	}
	return &LatencyMeasurement{
		name:        name,
		lock:        &sync.Mutex{},
		histogram:   hdrhistogram.New(0, max, int(sig)),
		percentiles: percentiles,
	}, nil
}

func (self *LatencyMeasurement) GetName() string {
	return self.name
}

// Latency is reported in microseconds.
func (self *LatencyMeasurement) Measure(latency int64) {
	self.lock.Lock()
	defer self.lock.Unlock()

	self.histogram.RecordValue(latency)
}

func (self *LatencyMeasurement) GetSummary() string {
	self.lock.Lock()
	defer self.lock.Unlock()

	return fmt.Sprintf("[%s: Count=%d, Max=%d, Min=%d, Avg=%g]",
		self.name,
		self.histogram.TotalCount(),
		self.histogram.Max(),
		self.histogram.Min(),
		self.histogram.Mean())
}

func (self *LatencyMeasurement) ExportMeasurements(exporter MeasurementExporter) (err error) {
	defer catch(&err)
	self.lock.Lock()
	defer self.lock.Unlock()

	try(exporter.Write(self.name, "Operations", self.histogram.TotalCount()))
	try(exporter.Write(self.name, "AverageLatency(us)", self.histogram.Mean()))
	try(exporter.Write(self.name, "MinLatency(us)", self.histogram.Min()))
	try(exporter.Write(self.name, "MaxLatency(us)", self.histogram.Max()))
	for _, p := range self.percentiles {
		try(exporter.Write(self.name, ordinal(p)+"PercentileLatency(us)",
			self.histogram.ValueAtQuantile(float64(p))))
	}
	return
}

// Measurements collects the frequency and latency metrics of one run.
type Measurements struct {
	frequency *FrequencyMeasurement
	latency   *LatencyMeasurement
}

func NewMeasurements(props Properties) (*Measurements, error) {
	latency, err := NewLatencyMeasurement("DRAW", props)
	if err != nil {
		return nil, err
	}
	return &Measurements{
		frequency: NewFrequencyMeasurement("FREQUENCY"),
		latency:   latency,
	}, nil
}

// Measure reports one draw: the outcome returned and the latency of
// the draw in microseconds.
func (self *Measurements) Measure(outcome int64, latency int64) {
	self.frequency.Measure(outcome)
	self.latency.Measure(latency)
}

func (self *Measurements) Frequency() *FrequencyMeasurement {
	return self.frequency
}

func (self *Measurements) GetSummary() string {
	return self.frequency.GetSummary() + " " + self.latency.GetSummary()
}

func (self *Measurements) ExportMeasurements(exporter MeasurementExporter) (err error) {
	defer catch(&err)
	try(exporter.Write("OVERALL", "Timestamp",
		strftime.Format("%Y-%m-%d %H:%M:%S", time.Now())))
	try(self.frequency.ExportMeasurements(exporter))
	try(self.latency.ExportMeasurements(exporter))
	return
}

var (
	measurementProperties Properties = NewProperties()
	singleton             *Measurements
)

func SetMeasurementProperties(props Properties) {
	measurementProperties = props
	singleton = nil
}

func GetMeasurements() *Measurements {
	if singleton == nil {
		m, err := NewMeasurements(measurementProperties)
		if err != nil {
			panic(fmt.Sprintf("unexpected error: %s", err))
		}
		singleton = m
	}
	return singleton
}
