// Package arena owns the fixed-size backing buffer that the allocator in
// package alloc parcels out, and tracks total/used/free capacity.
//
// An arena's storage comes from one of three places:
//
//   - New: the arena allocates and owns a zeroed buffer
//   - FromBuffer: the arena borrows caller storage, which must outlive it
//   - Map: the arena is backed by a writable memory-mapped file
//
// The buffer's lifetime strictly contains the arena's: a borrowed buffer must
// stay alive until Close, and Close never releases storage it does not own.
//
// Arenas are not safe for concurrent use. One logical owner operates an arena
// at a time; callers that share one must serialize around it.
package arena
