package randgen

import (
	"testing"
	"time"

	"github.com/hhkbp2/testify/require"
)

func TestNewSink(t *testing.T) {
	props := NewProperties()
	sink, err := NewSink("console", props)
	require.Nil(t, err)
	require.Equal(t, props, sink.GetProperties())

	_, err = NewSink("nosuchsink", props)
	require.NotNil(t, err)
}

func TestRegisterSink(t *testing.T) {
	name := "console2"
	RegisterSink(name, func() ResultSink {
		return NewConsoleSink()
	})
	defer delete(Sinks, name)
	_, err := NewSink(name, NewProperties())
	require.Nil(t, err)
}

func TestConsoleSink(t *testing.T) {
	sink := NewConsoleSink()
	sink.SetProperties(NewProperties())
	require.Nil(t, sink.Init())
	now := time.Now()
	result := &RunResult{
		Label:     "test",
		DrawCount: 4,
		StartTime: now,
		EndTime:   now.Add(time.Millisecond),
		Outcomes:  []int64{1, 2},
		Counts:    map[int64]int64{1: 3, 2: 1},
	}
	require.Nil(t, sink.Persist(result))
	require.Nil(t, sink.Cleanup())
}
