package arena

import "github.com/virtmem/varena/internal/mmfile"

// Map creates an arena backed by the writable memory-mapped file at path.
// The file's current size is the arena's capacity. Close unmaps the file;
// Sync flushes outstanding writes to it.
func Map(path string) (*Arena, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		_ = cleanup()
		return nil, ErrInvalidCapacity
	}
	return &Arena{
		data:  data,
		unmap: cleanup,
	}, nil
}

// Sync flushes a file-backed arena to disk. No-op for in-memory arenas.
func (a *Arena) Sync() error {
	if a.unmap == nil || a.data == nil {
		return nil
	}
	return mmfile.Sync(a.data)
}
