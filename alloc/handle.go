package alloc

import "github.com/virtmem/varena/internal/buf"

// Handle names a live allocation. It is a value type: copy it freely, but
// treat it as surrendered once passed to Free, and as replaced by the returned
// Handle after every successful Realloc — even when the data did not move.
//
// Each Handle carries a generation tag unique within its allocator, so
// double-free and use of a stale handle are detected (ErrBadHandle) rather
// than silently corrupting a later allocation.
type Handle struct {
	al   *Allocator
	off  int
	size int
	gen  uint64
}

// Offset returns the handle's current byte offset within the arena buffer.
// The offset may change across Realloc; never cache it across allocator calls.
func (h Handle) Offset() int { return h.off }

// Len returns the handle's current length in bytes.
func (h Handle) Len() int { return h.size }

// IsZero reports whether h is the zero Handle, which never names a live
// allocation. Realloc to size zero returns it.
func (h Handle) IsZero() bool { return h.gen == 0 }

// Bytes re-derives the handle's live region and returns it as a mutable view
// into the arena buffer. The view is valid only until the next allocator
// operation; re-derive it on every use. Returns ErrBadHandle when h no longer
// names a used block of its arena.
func (h Handle) Bytes() ([]byte, error) {
	if h.al == nil {
		return nil, ErrBadHandle
	}
	if _, err := h.al.lookup(h); err != nil {
		return nil, err
	}
	region, ok := buf.Slice(h.al.a.Bytes(), h.off, h.size)
	if !ok {
		return nil, ErrBadHandle
	}
	return region, nil
}
