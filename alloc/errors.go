package alloc

import "errors"

var (
	// ErrNoSpace indicates that no single free block large enough exists.
	ErrNoSpace = errors.New("alloc: no free block large enough")

	// ErrInvalidSize indicates a zero or negative allocation size.
	ErrInvalidSize = errors.New("alloc: invalid size")

	// ErrBadHandle indicates a handle that does not name a currently used
	// block of this arena: freed, stale, foreign, or the zero Handle.
	ErrBadHandle = errors.New("alloc: bad handle")
)
