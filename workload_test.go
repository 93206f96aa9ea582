package randgen

import (
	"path/filepath"
	"testing"

	"github.com/hhkbp2/testify/require"
	g "randgen/generator"
)

func TestSamplingWorkloadInit(t *testing.T) {
	w, err := NewWorkload(PropertyWorkloadDefault)
	require.Nil(t, err)
	props := NewProperties()
	props.Add(PropertyOutcomes, "1,2,3")
	props.Add(PropertyProbabilities, "0.2,0.3,0.5")
	require.Nil(t, w.Init(props))
	require.Equal(t, []int64{1, 2, 3}, w.Outcomes())
}

func TestSamplingWorkloadInitDefaults(t *testing.T) {
	w := NewSamplingWorkload()
	require.Nil(t, w.Init(NewProperties()))
	require.Equal(t, []int64{-1, 0, 1, 2, 3}, w.Outcomes())
}

func TestSamplingWorkloadInitInvalid(t *testing.T) {
	w := NewSamplingWorkload()
	props := NewProperties()
	props.Add(PropertyOutcomes, "1,2")
	props.Add(PropertyProbabilities, "0.5,0.6")
	err := w.Init(props)
	require.Equal(t, g.ErrProbabilitySum, err)
}

func TestSamplingWorkloadFromFile(t *testing.T) {
	w := NewSamplingWorkload()
	props := NewProperties()
	props.Add(PropertyDistributionFile,
		filepath.Join("generator", "weighted_generator.data"))
	require.Nil(t, w.Init(props))
	require.Equal(t, []int64{-1, 0, 1, 2, 3}, w.Outcomes())
}

func TestSamplingWorkloadDoDraw(t *testing.T) {
	w := NewSamplingWorkload()
	props := NewProperties()
	props.Add(PropertyOutcomes, "1,2,3")
	props.Add(PropertyProbabilities, "0.2,0.3,0.5")
	require.Nil(t, w.Init(props))
	w.Generator().SetSource(g.NewSource(1))

	measurements, err := NewMeasurements(props)
	require.Nil(t, err)
	times := 100
	for i := 0; i < times; i++ {
		require.True(t, w.DoDraw(measurements))
	}
	require.Equal(t, int64(times), measurements.Frequency().Total())
	var total int64
	for outcome, count := range measurements.Frequency().Counts() {
		require.True(t, outcome >= 1 && outcome <= 3)
		total += count
	}
	require.Equal(t, int64(times), total)
}

func TestNewWorkloadUnknown(t *testing.T) {
	_, err := NewWorkload("NoSuchWorkload")
	require.NotNil(t, err)
}
