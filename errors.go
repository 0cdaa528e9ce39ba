package atomicmap

import "errors"

var (
	// ErrInvalidCapacity is returned (or panicked by MustNew) when the
	// capacity is not a power of two of at least 2.
	ErrInvalidCapacity = errors.New("atomicmap: capacity must be a power of two >= 2")

	// ErrInvalidKey is panicked when key 0 is used. Zero marks empty slots.
	ErrInvalidKey = errors.New("atomicmap: key 0 is reserved")

	// ErrTableFull is returned when every slot is held by some other key.
	ErrTableFull = errors.New("atomicmap: table is full")
)
