package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Table_FindFree_FirstFit(t *testing.T) {
	// Layout: [F10][U5][F20] — the scan must pick the lowest-offset fit.
	tb := table{blocks: []block{
		{off: 0, size: 10, state: stateFree},
		{off: 10, size: 5, state: stateUsed, gen: 1},
		{off: 15, size: 20, state: stateFree},
	}}

	require.Equal(t, 0, tb.findFree(8))
	require.Equal(t, 0, tb.findFree(10))
	require.Equal(t, 2, tb.findFree(11))
	require.Equal(t, -1, tb.findFree(21))
}

func Test_Table_FindBlock(t *testing.T) {
	tb := newTable(100)
	require.Equal(t, 0, tb.findBlock(0))
	require.Equal(t, -1, tb.findBlock(1))
	require.Equal(t, -1, tb.findBlock(100))
}

func Test_Table_Split_NoRemainder(t *testing.T) {
	tb := newTable(32)
	require.False(t, tb.split(0, 32, 1))
	require.Equal(t, 1, len(tb.blocks))
	require.Equal(t, stateUsed, tb.blocks[0].state)
}

func Test_Table_Split_Remainder(t *testing.T) {
	tb := newTable(32)
	require.True(t, tb.split(0, 12, 1))
	require.Equal(t, 2, len(tb.blocks))
	require.Equal(t, 12, tb.blocks[0].size)
	require.Equal(t, 12, tb.blocks[1].off)
	require.Equal(t, 20, tb.blocks[1].size)
	require.Equal(t, stateFree, tb.blocks[1].state)
}

func Test_Table_MergeAdjacentFree(t *testing.T) {
	tb := table{blocks: []block{
		{off: 0, size: 10, state: stateFree},
		{off: 10, size: 10, state: stateFree}, // transient, mid-transition
		{off: 20, size: 10, state: stateFree},
	}}

	i, left, right := tb.mergeAdjacentFree(1)
	require.Equal(t, 0, i)
	require.True(t, left)
	require.True(t, right)
	require.Equal(t, 1, len(tb.blocks))
	require.Equal(t, 30, tb.blocks[0].size)
}
