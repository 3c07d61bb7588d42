package vbuf

import "errors"

var (
	// ErrOutOfBounds indicates an I/O request that does not fit within the
	// handle's current length.
	ErrOutOfBounds = errors.New("vbuf: out of bounds")
)
