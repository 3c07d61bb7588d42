// Package varena wraps one process-wide arena and allocator pair behind the
// same operations as the explicit API, for programs that want malloc-style
// calls without threading an allocator through every signature.
//
// The singleton has an explicit lifecycle: it is never constructed lazily.
// Init (or InitFromBuffer) must run first, and every operation before that
// fails with ErrNotInitialized. Re-initializing without an intervening
// Teardown is rejected with ErrAlreadyInitialized — replacing the arena
// silently would tear down storage that may still have live handles.
//
// The wrapper delegates to a single alloc.Allocator, so the implicit and
// explicit paths share one allocation policy. Like the core, it is not safe
// for concurrent use.
package varena

import (
	"github.com/virtmem/varena/alloc"
	"github.com/virtmem/varena/arena"
)

var global *alloc.Allocator

// Init constructs the process-wide arena with an owned buffer of capacity
// bytes. Fails with ErrAlreadyInitialized when a singleton already exists and
// with arena.ErrInvalidCapacity for capacity <= 0.
func Init(capacity int) error {
	if global != nil {
		return ErrAlreadyInitialized
	}
	a, err := arena.New(capacity)
	if err != nil {
		return err
	}
	global = alloc.New(a)
	return nil
}

// InitFromBuffer constructs the process-wide arena over caller-supplied
// storage, which must stay alive until Teardown.
func InitFromBuffer(buf []byte) error {
	if global != nil {
		return ErrAlreadyInitialized
	}
	a, err := arena.FromBuffer(buf)
	if err != nil {
		return err
	}
	global = alloc.New(a)
	return nil
}

// Teardown closes the process-wide arena and clears the singleton, after
// which Init may be called again. All handles into the singleton become
// invalid.
func Teardown() error {
	if global == nil {
		return ErrNotInitialized
	}
	err := global.Arena().Close()
	global = nil
	return err
}

// Alloc allocates size bytes from the process-wide arena.
func Alloc(size int) (alloc.Handle, error) {
	if global == nil {
		return alloc.Handle{}, ErrNotInitialized
	}
	return global.Alloc(size)
}

// Free releases an allocation made from the process-wide arena.
func Free(h alloc.Handle) error {
	if global == nil {
		return ErrNotInitialized
	}
	return global.Free(h)
}

// Realloc resizes an allocation made from the process-wide arena. See
// alloc.Allocator.Realloc for the full semantics.
func Realloc(h alloc.Handle, newSize int) (alloc.Handle, error) {
	if global == nil {
		return alloc.Handle{}, ErrNotInitialized
	}
	return global.Realloc(h, newSize)
}

// Stats returns the process-wide allocator's counters.
func Stats() (alloc.Stats, error) {
	if global == nil {
		return alloc.Stats{}, ErrNotInitialized
	}
	return global.Stats(), nil
}

// Arena returns the process-wide arena for inspection.
func Arena() (*arena.Arena, error) {
	if global == nil {
		return nil, ErrNotInitialized
	}
	return global.Arena(), nil
}
