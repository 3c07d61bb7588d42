package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_AddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(10, 20)
	require.True(t, ok)
	require.Equal(t, 30, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)
}

func Test_Slice_Bounds(t *testing.T) {
	b := make([]byte, 16)

	s, ok := Slice(b, 0, 16)
	require.True(t, ok)
	require.Len(t, s, 16)

	s, ok = Slice(b, 8, 8)
	require.True(t, ok)
	require.Len(t, s, 8)

	_, ok = Slice(b, 8, 9)
	require.False(t, ok)

	_, ok = Slice(b, -1, 4)
	require.False(t, ok)

	_, ok = Slice(b, 4, -1)
	require.False(t, ok)

	_, ok = Slice(b, 17, 0)
	require.False(t, ok)

	// Offset + length overflowing int must not wrap around into bounds.
	_, ok = Slice(b, 8, math.MaxInt)
	require.False(t, ok)
}

func Test_Has(t *testing.T) {
	b := make([]byte, 4)
	require.True(t, Has(b, 0, 4))
	require.True(t, Has(b, 4, 0))
	require.False(t, Has(b, 0, 5))
}
