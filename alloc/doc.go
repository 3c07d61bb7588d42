// Package alloc implements a relocatable allocator over a fixed-capacity
// arena: callers receive opaque Handles to byte regions rather than raw
// addresses, which lets the allocator move and resize allocations internally
// while keeping every live Handle resolvable.
//
// # Block table
//
// The arena buffer is partitioned into an ordered, gap-free sequence of
// blocks, each Free or Used; the block lengths always sum to the arena
// capacity. Allocation splits a Free block, freeing merges adjacent Free
// blocks eagerly, so no two neighbors are ever both Free. Block metadata is
// kept out of band — the arena bytes hold only caller data.
//
// # Placement and sizing
//
// Allocation placement is first-fit by ascending offset, making placement
// deterministic for a given operation sequence. Sizes are byte-exact: because
// callers only ever reach the buffer through bounds-checked Handle views,
// there is no pointer-alignment requirement and no rounding.
//
// # Handles and generations
//
// Every allocation is stamped with a generation tag unique within its
// allocator. Free and Realloc invalidate the handle they were given; a stale
// handle fails with ErrBadHandle instead of aliasing whatever block later
// occupies those bytes. After a successful Realloc, only the returned Handle
// is valid — the allocator reissues the generation even when the block did
// not move.
//
// # Reallocation
//
// Realloc shrinks in place, grows in place into a Free right neighbor when
// possible (the common case that avoids copying), and otherwise relocates:
// allocate elsewhere, copy, free the old block. A Realloc that fails with
// ErrNoSpace has no effect — the original allocation is never freed or
// mutated on a failed attempt.
//
// # Errors
//
// All failures are reported as explicit error values (ErrInvalidSize,
// ErrNoSpace, ErrBadHandle). The allocator never logs, panics, retries, or
// silently truncates a request.
//
// # Thread safety
//
// Allocator instances are not thread-safe. Callers must serialize access per
// arena; when sharing is required, wrap the whole allocator in one mutex —
// block splitting and merging touches neighbor state that cannot be
// partitioned safely.
package alloc
