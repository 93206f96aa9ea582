package randgen

import (
	"os"
	"testing"

	"github.com/hhkbp2/testify/require"
)

func TestProperties(t *testing.T) {
	k := "key"
	v := "value"
	p := NewProperties()
	p.Add(k, v)
	x := p.Get(k)
	require.Equal(t, v, x)
	x = p.GetDefault(k, "other")
	require.Equal(t, v, x)
	x = p.GetDefault("absent", "other")
	require.Equal(t, "other", x)
	k1 := "a"
	v1 := "b"
	p2 := Properties{k1: v1}
	p.Merge(p2)
	z := p.Get(k1)
	require.Equal(t, v1, z)
}

func TestLoadProperties(t *testing.T) {
	f, err := os.CreateTemp("", "randgen-props-")
	require.Nil(t, err)
	defer os.Remove(f.Name())
	content := `# a comment
outcomes = 1,2,3
probabilities=0.2,0.3,0.5

drawcount=100
`
	_, err = f.WriteString(content)
	require.Nil(t, err)
	require.Nil(t, f.Close())

	props, err := LoadProperties(f.Name())
	require.Nil(t, err)
	require.Equal(t, "1,2,3", props.Get(PropertyOutcomes))
	require.Equal(t, "0.2,0.3,0.5", props.Get(PropertyProbabilities))
	require.Equal(t, "100", props.Get(PropertyDrawCount))
}

func TestToTime(t *testing.T) {
	nanosecond := int64(12345 * 1000 * 1000)
	v := NanosecondToMicrosecond(nanosecond)
	require.Equal(t, nanosecond/1000, v)
	v = NanosecondToMillisecond(nanosecond)
	require.Equal(t, nanosecond/1000/1000, v)
	v = SecondToNanosecond(2)
	require.Equal(t, int64(2*1000*1000*1000), v)
}
