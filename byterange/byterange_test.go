package byterange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeValid(t *testing.T) {
	require.True(t, Range{Begin: 0, Length: 0}.Valid())
	require.True(t, Range{Begin: 3, Length: 5}.Valid())
	require.False(t, Range{Begin: -1, Length: 5}.Valid())
	require.False(t, Range{Begin: 0, Length: -1}.Valid())
}

func TestRangeIterate(t *testing.T) {
	var got []int
	Range{Begin: 2, Length: 4}.Iterate(func(i int) bool {
		got = append(got, i)
		return true
	})
	require.Equal(t, []int{2, 3, 4, 5}, got)
}

func TestRangeIterateStopsEarly(t *testing.T) {
	var got []int
	Range{Begin: 0, Length: 10}.Iterate(func(i int) bool {
		got = append(got, i)
		return i < 2
	})
	require.Equal(t, []int{0, 1, 2}, got)
}

func TestSplitEvenDistribution(t *testing.T) {
	got := Split(10, 2)
	require.Equal(t, []Range{{Begin: 0, Length: 5}, {Begin: 5, Length: 5}}, got)
}

func TestSplitRemainderGoesToFirstParts(t *testing.T) {
	got := Split(10, 3)
	require.Equal(t, []Range{
		{Begin: 0, Length: 4},
		{Begin: 4, Length: 3},
		{Begin: 7, Length: 3},
	}, got)

	total := 0
	for _, r := range got {
		total += r.Length
	}
	require.Equal(t, 10, total)
}

func TestSplitRejectsNonPositiveParts(t *testing.T) {
	require.Nil(t, Split(10, 0))
	require.Nil(t, Split(10, -1))
}
