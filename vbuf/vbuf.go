// Package vbuf provides bounds-checked buffer I/O over allocation handles.
//
// Every operation re-derives the handle's live region through the allocator,
// so reads and writes can never touch bytes outside the region currently
// attributed to that handle — even though the backing store is one shared
// buffer. That containment is the safety property the handle indirection
// exists to provide; requests that do not fit fail with ErrOutOfBounds and
// change nothing.
package vbuf

import (
	"encoding/binary"

	"github.com/virtmem/varena/alloc"
	"github.com/virtmem/varena/internal/buf"
)

// Write copies p into h's region starting at its base. Fails with
// ErrOutOfBounds when p is longer than the handle's current length.
func Write(h alloc.Handle, p []byte) error {
	return WriteAt(h, 0, p)
}

// Read returns a copy of exactly n bytes from the start of h's region.
// Fails with ErrOutOfBounds when n exceeds the handle's current length.
func Read(h alloc.Handle, n int) ([]byte, error) {
	return ReadAt(h, 0, n)
}

// WriteAt copies p into h's region starting at byte offset off.
func WriteAt(h alloc.Handle, off int, p []byte) error {
	region, err := h.Bytes()
	if err != nil {
		return err
	}
	dst, ok := buf.Slice(region, off, len(p))
	if !ok {
		return ErrOutOfBounds
	}
	copy(dst, p)
	return nil
}

// ReadAt returns a copy of n bytes from h's region starting at byte offset off.
func ReadAt(h alloc.Handle, off, n int) ([]byte, error) {
	region, err := h.Bytes()
	if err != nil {
		return nil, err
	}
	src, ok := buf.Slice(region, off, n)
	if !ok {
		return nil, ErrOutOfBounds
	}
	out := make([]byte, n)
	copy(out, src)
	return out, nil
}

// PutU16 writes v little-endian at byte offset off within h's region.
func PutU16(h alloc.Handle, off int, v uint16) error {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return WriteAt(h, off, tmp[:])
}

// PutU32 writes v little-endian at byte offset off within h's region.
func PutU32(h alloc.Handle, off int, v uint32) error {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return WriteAt(h, off, tmp[:])
}

// PutU64 writes v little-endian at byte offset off within h's region.
func PutU64(h alloc.Handle, off int, v uint64) error {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return WriteAt(h, off, tmp[:])
}

// U16 reads a little-endian uint16 at byte offset off within h's region.
func U16(h alloc.Handle, off int) (uint16, error) {
	b, err := ReadAt(h, off, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads a little-endian uint32 at byte offset off within h's region.
func U32(h alloc.Handle, off int) (uint32, error) {
	b, err := ReadAt(h, off, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U64 reads a little-endian uint64 at byte offset off within h's region.
func U64(h alloc.Handle, off int) (uint64, error) {
	b, err := ReadAt(h, off, 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}
