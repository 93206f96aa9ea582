package generator

import (
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestFloat64Range(t *testing.T) {
	source := NewSource(1)
	times := 10000
	for i := 0; i < times; i++ {
		v := Float64(source)
		require.True(t, v >= 0.0 && v < 1.0)
	}
}

func TestSourceSeedReproducible(t *testing.T) {
	times := 100
	a := NewSource(12345)
	b := NewSource(12345)
	for i := 0; i < times; i++ {
		require.Equal(t, a.Uint64(), b.Uint64())
	}
	a.Seed(12345)
	b.Seed(54321)
	var same int
	for i := 0; i < times; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	require.True(t, same < times)
}

func TestSharedSourceSeed(t *testing.T) {
	defer Seed(1)
	times := 100
	Seed(10)
	expected := make([]float64, times)
	for i := 0; i < times; i++ {
		expected[i] = NextFloat64()
	}
	Seed(10)
	for i := 0; i < times; i++ {
		require.Equal(t, expected[i], NextFloat64())
	}
}
