package arena

import "errors"

var (
	// ErrInvalidCapacity indicates a zero or negative capacity request, or an
	// empty backing buffer.
	ErrInvalidCapacity = errors.New("arena: invalid capacity")
)
