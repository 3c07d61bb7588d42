package varena

import "errors"

var (
	// ErrNotInitialized indicates use of the process-wide arena before Init.
	ErrNotInitialized = errors.New("varena: not initialized")

	// ErrAlreadyInitialized indicates Init on an already-initialized
	// process-wide arena; call Teardown first.
	ErrAlreadyInitialized = errors.New("varena: already initialized")
)
