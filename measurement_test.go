package randgen

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hhkbp2/testify/require"
)

type closableBuffer struct {
	bytes.Buffer
}

func (self *closableBuffer) Close() error {
	return nil
}

func TestTextMeasurementExporter(t *testing.T) {
	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, exporter.Write("FREQUENCY", "Draws", int64(5)))
	require.Nil(t, exporter.Close())
	require.Equal(t, "[FREQUENCY], Draws, 5\n", buf.String())
}

func TestJSONArrayMeasurementExporter(t *testing.T) {
	buf := &closableBuffer{}
	exporter := NewJSONArrayMeasurementExporter(buf)
	require.Nil(t, exporter.Write("FREQUENCY", "Draws", int64(5)))
	require.Nil(t, exporter.Write("FREQUENCY", "Count(1)", int64(2)))
	require.Nil(t, exporter.Close())
	var decoded []innerJSONMeasurement
	require.Nil(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, 2, len(decoded))
	require.Equal(t, "Draws", decoded[0].Measurement)
}

func TestFrequencyMeasurement(t *testing.T) {
	m := NewFrequencyMeasurement("FREQUENCY")
	m.Measure(1)
	m.Measure(1)
	m.Measure(2)
	m.Measure(-1)
	require.Equal(t, int64(4), m.Total())
	counts := m.Counts()
	require.Equal(t, int64(2), counts[1])
	require.Equal(t, int64(1), counts[2])
	require.Equal(t, int64(1), counts[-1])

	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, m.ExportMeasurements(exporter))
	require.Nil(t, exporter.Close())
	output := buf.String()
	require.True(t, strings.Contains(output, "[FREQUENCY], Draws, 4"))
	require.True(t, strings.Contains(output, "[FREQUENCY], Count(1), 2"))
	require.True(t, strings.Contains(output, "[FREQUENCY], Proportion(1), 0.5"))
	// outcomes are exported in ascending order
	require.True(t,
		strings.Index(output, "Count(-1)") < strings.Index(output, "Count(1)"))
}

func TestLatencyMeasurement(t *testing.T) {
	m, err := NewLatencyMeasurement("DRAW", NewProperties())
	require.Nil(t, err)
	for i := int64(1); i <= 100; i++ {
		m.Measure(i)
	}
	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, m.ExportMeasurements(exporter))
	require.Nil(t, exporter.Close())
	output := buf.String()
	require.True(t, strings.Contains(output, "[DRAW], Operations, 100"))
	require.True(t, strings.Contains(output, "[DRAW], 95thPercentileLatency(us)"))
}

func TestMeasurements(t *testing.T) {
	m, err := NewMeasurements(NewProperties())
	require.Nil(t, err)
	m.Measure(3, 10)
	m.Measure(3, 20)
	require.Equal(t, int64(2), m.Frequency().Total())
	summary := m.GetSummary()
	require.True(t, strings.Contains(summary, "Draws=2"))

	buf := &closableBuffer{}
	exporter := NewTextMeasurementExporter(buf)
	require.Nil(t, m.ExportMeasurements(exporter))
	require.Nil(t, exporter.Close())
	require.True(t, strings.Contains(buf.String(), "[OVERALL], Timestamp,"))
}

func TestParsePercentileValues(t *testing.T) {
	values := parsePercentileValues("50, 95,99", PropertyPercentilesDefault)
	require.Equal(t, []int64{50, 95, 99}, values)
	// malformed input falls back to the default
	values = parsePercentileValues("abc", PropertyPercentilesDefault)
	require.Equal(t, []int64{90, 95, 99}, values)
}

func TestOrdinal(t *testing.T) {
	require.Equal(t, "90th", ordinal(90))
	require.Equal(t, "99th", ordinal(99))
	require.Equal(t, "51st", ordinal(51))
	require.Equal(t, "42nd", ordinal(42))
	require.Equal(t, "3rd", ordinal(3))
	require.Equal(t, "11th", ordinal(11))
}
