package arena

// Arena is a fixed-capacity backing buffer, owned by the arena itself,
// borrowed from the caller, or backed by a memory-mapped file.
type Arena struct {
	data  []byte
	used  int
	owned bool
	unmap func() error
}

// New creates an arena that owns a zeroed buffer of capacity bytes.
func New(capacity int) (*Arena, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Arena{
		data:  make([]byte, capacity),
		owned: true,
	}, nil
}

// FromBuffer creates an arena over caller-supplied storage. The arena borrows
// buf: the caller retains ownership and must keep it alive for the arena's
// lifetime. No two arenas may share the same buffer.
func FromBuffer(buf []byte) (*Arena, error) {
	if len(buf) == 0 {
		return nil, ErrInvalidCapacity
	}
	return &Arena{data: buf}, nil
}

// Bytes returns the backing buffer. Nil after Close.
func (a *Arena) Bytes() []byte { return a.data }

// Capacity returns the total size of the backing buffer in bytes.
func (a *Arena) Capacity() int { return len(a.data) }

// Used returns the sum of live block lengths.
func (a *Arena) Used() int { return a.used }

// Free returns the number of bytes not held by live blocks.
func (a *Arena) Free() int { return len(a.data) - a.used }

// BumpUsed adds delta (which may be negative) to the used-byte accounting.
// Called by the allocator as blocks change state.
func (a *Arena) BumpUsed(delta int) {
	a.used += delta
}

// Close tears the arena down: owned storage is released, borrowed storage is
// left to its owner, mapped storage is unmapped. Calling Close while handles
// into the arena are still live is a contract violation; any use of such a
// handle afterwards is undefined. Close is idempotent.
func (a *Arena) Close() error {
	if a.data == nil {
		return nil
	}
	a.data = nil
	a.used = 0
	if a.unmap != nil {
		unmap := a.unmap
		a.unmap = nil
		return unmap()
	}
	return nil
}
