package alloc

import (
	"slices"

	"github.com/virtmem/varena/arena"
)

// Allocator implements allocate, free, and reallocate over one arena's block
// table, with eager coalescing of adjacent free blocks. It is the sole
// authority that creates and invalidates Handles.
//
// Placement policy is first-fit by ascending offset, so placement is
// deterministic for a given operation sequence. Sizes are byte-exact: handles
// are address-indirected, so no pointer-alignment rounding is applied.
//
// Allocators are not safe for concurrent use; callers serialize access per
// arena (a single coarse mutex around the whole allocator is the recommended
// strategy when sharing is required).
type Allocator struct {
	a       *arena.Arena
	t       table
	nextGen uint64
	stats   Stats
}

// Stats holds allocator operation counters. The allocator never logs; these
// counters are its only instrumentation surface.
type Stats struct {
	AllocCalls   int // total Alloc calls
	FreeCalls    int // total Free calls
	ReallocCalls int // total Realloc calls
	SplitCount   int // free-block splits that produced a remainder

	CoalesceForward  int // merges absorbing a free right neighbor
	CoalesceBackward int // merges absorbing a free left neighbor

	BytesAllocated int64 // total bytes handed out
	BytesFreed     int64 // total bytes returned
	BytesMoved     int64 // bytes copied by relocating reallocations

	GrowsInPlace   int // reallocations absorbing the right neighbor
	ShrinksInPlace int // reallocations releasing a trailing remainder
	Relocations    int // reallocations that moved the data
}

// New creates an allocator over a. The arena starts as a single free block
// spanning its whole capacity.
func New(a *arena.Arena) *Allocator {
	return &Allocator{
		a: a,
		t: newTable(a.Capacity()),
	}
}

// Arena returns the arena this allocator manages.
func (al *Allocator) Arena() *arena.Arena { return al.a }

// Stats returns a snapshot of the allocator's counters.
func (al *Allocator) Stats() Stats { return al.stats }

// Alloc allocates size bytes and returns a fresh Handle over them.
// Fails with ErrInvalidSize for size <= 0, and with ErrNoSpace when no single
// free block is large enough; no compaction is attempted.
func (al *Allocator) Alloc(size int) (Handle, error) {
	al.stats.AllocCalls++
	if size <= 0 {
		return Handle{}, ErrInvalidSize
	}

	i := al.t.findFree(size)
	if i < 0 {
		return Handle{}, ErrNoSpace
	}

	gen := al.newGen()
	if al.t.split(i, size, gen) {
		al.stats.SplitCount++
	}
	al.a.BumpUsed(size)
	al.stats.BytesAllocated += int64(size)

	return Handle{al: al, off: al.t.blocks[i].off, size: size, gen: gen}, nil
}

// Free returns h's block to the free pool, merging it with any adjacent free
// neighbors, and invalidates h. Fails with ErrBadHandle when h does not name
// a currently used block of this arena — this covers double-free, foreign
// handles, and stale handles left over from a Realloc.
func (al *Allocator) Free(h Handle) error {
	al.stats.FreeCalls++
	i, err := al.lookup(h)
	if err != nil {
		return err
	}
	al.freeAt(i)
	return nil
}

// Realloc resizes the allocation named by h to newSize bytes and returns the
// authoritative replacement Handle; the pre-call handle is stale afterwards
// even when the data did not move. Semantics, in priority order: shrink in
// place, grow in place into a free right neighbor, otherwise relocate (copy
// min(old, new) bytes elsewhere and free the old block).
//
// Realloc is failure-atomic: on ErrNoSpace the original allocation — handle,
// length, and content — is untouched. newSize == 0 frees the allocation and
// returns the zero Handle with a nil error.
func (al *Allocator) Realloc(h Handle, newSize int) (Handle, error) {
	al.stats.ReallocCalls++
	if newSize < 0 {
		return Handle{}, ErrInvalidSize
	}
	i, err := al.lookup(h)
	if err != nil {
		return Handle{}, err
	}

	if newSize == 0 {
		al.freeAt(i)
		return Handle{}, nil
	}

	cur := al.t.blocks[i].size
	switch {
	case newSize == cur:
		// Same length: reissue the handle under a fresh generation so the
		// pre-call handle is detectably stale.
		gen := al.newGen()
		al.t.blocks[i].gen = gen
		return Handle{al: al, off: al.t.blocks[i].off, size: cur, gen: gen}, nil

	case newSize < cur:
		return al.shrinkInPlace(i, newSize), nil

	default:
		if h2, ok := al.growInPlace(i, newSize); ok {
			return h2, nil
		}
		return al.relocate(i, newSize)
	}
}

// shrinkInPlace releases the trailing cur-newSize bytes of the used block at
// index i as a new free block, merged with a free right neighbor if present.
func (al *Allocator) shrinkInPlace(i, newSize int) Handle {
	b := &al.t.blocks[i]
	rem := b.size - newSize
	gen := al.newGen()
	b.size = newSize
	b.gen = gen
	off := b.off

	al.t.blocks = slices.Insert(al.t.blocks, i+1, block{
		off:   off + newSize,
		size:  rem,
		state: stateFree,
	})
	// Only the right neighbor can be free: the left one is the shrunk block.
	if _, _, right := al.t.mergeAdjacentFree(i + 1); right {
		al.stats.CoalesceForward++
	}

	al.a.BumpUsed(-rem)
	al.stats.BytesFreed += int64(rem)
	al.stats.ShrinksInPlace++
	return Handle{al: al, off: off, size: newSize, gen: gen}
}

// growInPlace extends the used block at index i into its free right neighbor
// when the combined span is large enough. Reports ok = false otherwise.
func (al *Allocator) growInPlace(i, newSize int) (Handle, bool) {
	b := &al.t.blocks[i]
	if i+1 >= len(al.t.blocks) {
		return Handle{}, false
	}
	right := &al.t.blocks[i+1]
	if right.state != stateFree || b.size+right.size < newSize {
		return Handle{}, false
	}

	delta := newSize - b.size
	gen := al.newGen()
	b.size = newSize
	b.gen = gen
	right.off += delta
	right.size -= delta
	if right.size == 0 {
		al.t.blocks = slices.Delete(al.t.blocks, i+1, i+2)
	}

	al.a.BumpUsed(delta)
	al.stats.BytesAllocated += int64(delta)
	al.stats.GrowsInPlace++
	return Handle{al: al, off: b.off, size: newSize, gen: gen}, true
}

// relocate satisfies a growing reallocation by allocating a fresh block,
// copying the old content, and freeing the old block. The old block stays
// intact until the new one is secured, which is what makes a failed Realloc
// side-effect free.
func (al *Allocator) relocate(i, newSize int) (Handle, error) {
	oldOff := al.t.blocks[i].off
	oldSize := al.t.blocks[i].size

	j := al.t.findFree(newSize)
	if j < 0 {
		return Handle{}, ErrNoSpace
	}

	gen := al.newGen()
	if al.t.split(j, newSize, gen) {
		al.stats.SplitCount++
	}
	newOff := al.t.blocks[j].off
	al.a.BumpUsed(newSize)
	al.stats.BytesAllocated += int64(newSize)

	data := al.a.Bytes()
	copy(data[newOff:newOff+oldSize], data[oldOff:oldOff+oldSize])
	al.stats.BytesMoved += int64(oldSize)
	al.stats.Relocations++

	// The split may have shifted the old block's index; re-find it by offset.
	al.freeAt(al.t.findBlock(oldOff))

	return Handle{al: al, off: newOff, size: newSize, gen: gen}, nil
}

// freeAt transitions the used block at index i to free, coalesces eagerly,
// and updates accounting.
func (al *Allocator) freeAt(i int) {
	b := &al.t.blocks[i]
	size := b.size
	b.state = stateFree
	b.gen = 0

	_, left, right := al.t.mergeAdjacentFree(i)
	if left {
		al.stats.CoalesceBackward++
	}
	if right {
		al.stats.CoalesceForward++
	}

	al.a.BumpUsed(-size)
	al.stats.BytesFreed += int64(size)
}

// lookup resolves h to its block index. ErrBadHandle unless h belongs to this
// allocator and names a currently used block with a matching generation.
func (al *Allocator) lookup(h Handle) (int, error) {
	if h.al != al || h.gen == 0 {
		return -1, ErrBadHandle
	}
	i := al.t.findBlock(h.off)
	if i < 0 {
		return -1, ErrBadHandle
	}
	b := &al.t.blocks[i]
	if b.state != stateUsed || b.gen != h.gen {
		return -1, ErrBadHandle
	}
	return i, nil
}

func (al *Allocator) newGen() uint64 {
	al.nextGen++
	return al.nextGen
}
