package alloc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/virtmem/varena/arena"
)

// newTestAllocator creates an owned arena of the given capacity and an
// allocator over it, cleaning both up with the test.
func newTestAllocator(t *testing.T, capacity int) *Allocator {
	t.Helper()
	a, err := arena.New(capacity)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return New(a)
}

// validateInvariants checks the block table's structural invariants:
//  1. blocks are strictly ordered, contiguous, and gap-free from offset 0
//  2. block lengths sum to the arena capacity
//  3. no two adjacent blocks are both free
//  4. used-byte accounting equals the sum of used block lengths
//  5. used blocks carry nonzero generations, free blocks carry zero
func validateInvariants(t *testing.T, al *Allocator) {
	t.Helper()

	next := 0
	usedSum := 0
	for i, b := range al.t.blocks {
		require.Equal(t, next, b.off, "block %d: gap or overlap in partition", i)
		require.Positive(t, b.size, "block %d: non-positive size", i)
		if i > 0 && b.state == stateFree {
			require.NotEqual(t, stateFree, al.t.blocks[i-1].state,
				"blocks %d and %d are both free", i-1, i)
		}
		switch b.state {
		case stateUsed:
			require.NotZero(t, b.gen, "used block %d has zero generation", i)
			usedSum += b.size
		case stateFree:
			require.Zero(t, b.gen, "free block %d has nonzero generation", i)
		}
		next += b.size
	}
	require.Equal(t, al.a.Capacity(), next, "block lengths must sum to capacity")
	require.Equal(t, usedSum, al.a.Used(), "used accounting out of sync")
}

// fill writes a deterministic pattern over the handle's region.
func fill(t *testing.T, h Handle, seed byte) {
	t.Helper()
	region, err := h.Bytes()
	require.NoError(t, err)
	for i := range region {
		region[i] = seed + byte(i)
	}
}

// checkFill verifies the first n bytes of the handle's region still hold the
// pattern written by fill.
func checkFill(t *testing.T, h Handle, seed byte, n int) {
	t.Helper()
	region, err := h.Bytes()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(region), n)
	for i := 0; i < n; i++ {
		require.Equal(t, seed+byte(i), region[i], "content mismatch at offset %d", i)
	}
}
