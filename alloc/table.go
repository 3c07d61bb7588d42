package alloc

import (
	"cmp"
	"slices"
)

type blockState uint8

const (
	stateFree blockState = iota
	stateUsed
)

// block is one contiguous sub-range of the arena buffer.
type block struct {
	off   int        // byte offset into the arena buffer
	size  int        // byte length, always > 0
	state blockState // Free or Used
	gen   uint64     // generation tag; nonzero only while Used
}

// table maintains the block sequence: strictly ordered by offset,
// non-overlapping, gap-free, summing to the arena capacity. No two adjacent
// blocks are ever both Free.
type table struct {
	blocks []block
}

func newTable(capacity int) table {
	if capacity <= 0 {
		return table{}
	}
	return table{blocks: []block{{off: 0, size: capacity, state: stateFree}}}
}

// findFree returns the index of the first Free block of at least n bytes,
// scanning by ascending offset, or -1 when no single block is large enough.
func (t *table) findFree(n int) int {
	for i := range t.blocks {
		b := &t.blocks[i]
		if b.state == stateFree && b.size >= n {
			return i
		}
	}
	return -1
}

// findBlock returns the index of the block starting exactly at off, or -1.
func (t *table) findBlock(off int) int {
	i, ok := slices.BinarySearchFunc(t.blocks, off, func(b block, target int) int {
		return cmp.Compare(b.off, target)
	})
	if !ok {
		return -1
	}
	return i
}

// split carves a Used block of exactly n bytes from the start of the Free
// block at index i, stamping it with gen. A remainder, if any, becomes a new
// adjacent Free block; zero-length remainders are never created.
// Returns true when a remainder block was created.
func (t *table) split(i, n int, gen uint64) bool {
	b := &t.blocks[i]
	rem := b.size - n
	b.size = n
	b.state = stateUsed
	b.gen = gen
	if rem == 0 {
		return false
	}
	t.blocks = slices.Insert(t.blocks, i+1, block{
		off:   b.off + n,
		size:  rem,
		state: stateFree,
	})
	return true
}

// mergeAdjacentFree folds the Free block at index i into any Free immediate
// neighbors and returns the index of the merged block along with which
// neighbors were absorbed.
func (t *table) mergeAdjacentFree(i int) (merged int, left, right bool) {
	if i+1 < len(t.blocks) && t.blocks[i+1].state == stateFree {
		t.blocks[i].size += t.blocks[i+1].size
		t.blocks = slices.Delete(t.blocks, i+1, i+2)
		right = true
	}
	if i > 0 && t.blocks[i-1].state == stateFree {
		t.blocks[i-1].size += t.blocks[i].size
		t.blocks = slices.Delete(t.blocks, i, i+1)
		i--
		left = true
	}
	return i, left, right
}
